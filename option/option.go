package option

import (
	"encoding/json"
	"os"

	"conlog/pkg/color"
	"conlog/pkg/log"

	"github.com/pkg/errors"
)

type Option struct {
	LogOption LogOption `json:"log"`
}

type LogOption struct {
	Name         string           `json:"name"`
	Levels       map[Level]bool   `json:"levels"`
	Routes       map[Level]Stream `json:"routes"`
	LegacyRoutes bool             `json:"legacy_routes"`
	Color        ColorMode        `json:"color"`
	DisableTime  bool             `json:"disable_time"`
}

// ReadOption reads and checks a JSON config file.
func ReadOption(path string) (*Option, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	var opt Option
	err = json.Unmarshal(content, &opt)
	if err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}
	err = CheckOption(&opt)
	if err != nil {
		return nil, errors.Wrap(err, "check config")
	}
	return &opt, nil
}

func CheckOption(option *Option) error {
	logOption := &option.LogOption
	if logOption.Color == "" {
		logOption.Color = ColorMode(color.ModeAuto)
	}
	for level, stream := range logOption.Routes {
		if stream == "" {
			return errors.Errorf("route of level `%s` is empty", level)
		}
	}
	return nil
}

// Options converts the log option into logger options writing to the
// console.
func (o LogOption) Options() log.Options {
	opts := log.Options{
		Name:        o.Name,
		Color:       color.Mode(o.Color),
		DisableTime: o.DisableTime,
	}
	if o.Levels != nil {
		opts.Levels = make(map[log.Level]bool, len(o.Levels))
		for level, enabled := range o.Levels {
			opts.Levels[log.Level(level)] = enabled
		}
	}
	if o.LegacyRoutes {
		opts.Routes = log.LegacyRoutes()
	} else {
		opts.Routes = log.DefaultRoutes()
	}
	for level, stream := range o.Routes {
		opts.Routes[log.Level(level)] = log.Stream(stream)
	}
	return opts
}
