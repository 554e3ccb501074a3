package lib

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/color"
)

const base64Threshold = 200

var (
	ErrConfig = errors.New("config file is empty")
	warning   = color.Red("[Fail]")
)

// ConfigLoad читаем конфигурацию
// 1. значения по-умолчанию и переменные окружения (envconfig)
// 2. если передан файл (или base64 содержимого) - поверх накладываем toml
// Без файла сервис работает только на переменных окружения, payload пустой.
func ConfigLoad(config string, cfgPointer interface{}) (payload string, err error) {
	if err = envconfig.Process("", cfgPointer); err != nil {
		fmt.Println(warning, "Unable load default environment:", err)
		return "", fmt.Errorf("unable load default environment: %w", err)
	}

	if config == "" {
		return "", nil
	}

	payload, err = readConfig(config)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(payload) == "" {
		return "", ErrConfig
	}

	return payload, DecodeConfig(payload, cfgPointer)
}

// readConfig короткая строка - имя файла, длинная - конфигурация в base64
func readConfig(config string) (payload string, err error) {
	if len(config) >= base64Threshold {
		debase, err := base64.StdEncoding.DecodeString(config)
		if err != nil {
			return "", fmt.Errorf("unable decode to string from base64 configfile: %w", err)
		}
		return string(debase), nil
	}

	if !strings.Contains(config, ".") {
		config = config + ".cfg"
	}

	b, err := os.ReadFile(config)
	if err != nil {
		return "", fmt.Errorf("unable read configfile (%s): %w", config, err)
	}

	return string(b), nil
}

// DecodeConfig Читаем конфигурация из строки
func DecodeConfig(configfile string, cfg interface{}) (err error) {
	if _, err = toml.Decode(configfile, cfg); err != nil {
		fmt.Println(warning, "Error:", err, "(configfile: "+configfile+")")
	}

	return err
}
