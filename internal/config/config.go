package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Listen        string        `koanf:"listen"`
	StateDir      string        `koanf:"statedir"`
	Upstream      Upstream      `koanf:"upstream"`
	Calendar      Calendar      `koanf:"calendar"`
	Notifications Notifications `koanf:"notifications"`
	QR            QR            `koanf:"qr"`
}

type Upstream struct {
	// BaseURL is the root of the inventory REST API, e.g. "http://localhost:8000/api".
	BaseURL string        `koanf:"baseurl"`
	Timeout time.Duration `koanf:"timeout"`
}

type Calendar struct {
	// DefaultDueTime is the local wall-clock time assumed for records that
	// carry a date but no time, in "HH:MM" form.
	DefaultDueTime string `koanf:"defaultduetime"`
	// TaskDuration is the synthetic length given to task and notification
	// events, which have no explicit end on the upstream side.
	TaskDuration time.Duration `koanf:"taskduration"`
}

type Notifications struct {
	PollInterval time.Duration `koanf:"pollinterval"`
}

type QR struct {
	// ServiceURL is the public QR image generator endpoint.
	ServiceURL string `koanf:"serviceurl"`
	// LinkBase is the dashboard origin embedded into generated deep links.
	LinkBase string `koanf:"linkbase"`
	Size     int    `koanf:"size"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Listen:   ":8181",
		StateDir: "./var",
		Upstream: Upstream{
			BaseURL: "http://localhost:8000/api",
			Timeout: 15 * time.Second,
		},
		Calendar: Calendar{
			DefaultDueTime: "09:00",
			TaskDuration:   time.Hour,
		},
		Notifications: Notifications{
			PollInterval: 30 * time.Second,
		},
		QR: QR{
			ServiceURL: "https://api.qrserver.com/v1/create-qr-code/",
			LinkBase:   "http://localhost:8181",
			Size:       200,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "INVENTRA_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "INVENTRA_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
