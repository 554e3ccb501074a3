package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration custom duration for toml configs
type Duration struct {
	time.Duration
	Value time.Duration
}

// UnmarshalText method satisfying toml unmarshal interface
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	t := string(text)
	// если получили только цифру - добавляем секунды (по-умолчанию)
	if len(t) != 0 {
		lastStr := t[len(t)-1:]
		if lastStr != "h" && lastStr != "m" && lastStr != "s" {
			t = t + "s"
		}
	}
	d.Value, err = time.ParseDuration(t)
	return err
}

// Int custom int for toml configs
type Int struct {
	int
	Value int
}

// UnmarshalText method satisfying toml unmarshal interface
func (d *Int) UnmarshalText(text []byte) error {
	tt := string(text)
	if tt == "" {
		d.Value = 0
		return nil
	}
	i, err := strconv.Atoi(tt)
	d.Value = i
	return err
}

// Bool custom bool for toml configs
type Bool struct {
	bool
	Value bool
}

// UnmarshalText method satisfying toml unmarshal interface
func (d *Bool) UnmarshalText(text []byte) error {
	d.Value = false
	if string(text) == "true" || string(text) == "1" {
		d.Value = true
	}
	return nil
}

// SetDefaultPort выставляет порт по роли сервиса, если он не был задан
func (c *Config) SetDefaultPort() {
	if c.Port != "" {
		return
	}
	c.Port = DefaultPorts[c.Service]
}

// Validate проверяет согласованность параметров после загрузки
func (c *Config) Validate() error {
	c.Service = strings.ToLower(strings.TrimSpace(c.Service))
	if _, ok := DefaultPorts[c.Service]; !ok {
		return fmt.Errorf("unknown service %q (expected %s or %s)", c.Service, ServiceBackend, ServiceFrontend)
	}

	if c.Service == ServiceFrontend && strings.TrimSpace(c.BackendURL) == "" {
		return fmt.Errorf("BACKEND_URL is empty")
	}
	c.BackendURL = strings.TrimRight(c.BackendURL, "/")

	// ответ об ошибке backend-а должен успеть уйти до дедлайна записи
	if c.Service == ServiceFrontend && c.WriteTimeout.Value > 0 &&
		(c.UpstreamTimeout.Value <= 0 || c.UpstreamTimeout.Value >= c.WriteTimeout.Value) {
		return fmt.Errorf("UPSTREAM_TIMEOUT (%s) must be positive and less than WRITE_TIMEOUT (%s)",
			c.UpstreamTimeout.Value, c.WriteTimeout.Value)
	}

	c.SetDefaultPort()

	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}

	return nil
}
