package servers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"

	"git.lowcodeplatform.net/fabric/demo/pkg/model"
	"git.lowcodeplatform.net/fabric/demo/pkg/servers"
)

type runnerStub struct {
	calls int
	err   error
}

func (r *runnerStub) Run() error {
	r.calls++
	return r.err
}

func TestServers_Run(t *testing.T) {
	t.Parallel()
	cfg := model.Config{Service: model.ServiceBackend}

	ok := &runnerStub{}
	assert.NoError(t, servers.New("http", ok, cfg).Run(context.Background()))
	assert.Equal(t, 1, ok.calls)

	failed := &runnerStub{err: assert.AnError}
	err := servers.New("http", failed, cfg).Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, multierr.Errors(err), 1)

	skipped := &runnerStub{}
	assert.NoError(t, servers.New("", skipped, cfg).Run(context.Background()))
	assert.Zero(t, skipped.calls)
}
