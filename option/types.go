package option

import (
	"encoding/json"

	"conlog/pkg/color"
	"conlog/pkg/log"
)

type Level log.Level

func (l *Level) UnmarshalText(b []byte) error {
	level, err := log.ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = Level(level)
	return nil
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

type Stream log.Stream

func (s *Stream) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	stream, err := log.ParseStream(str)
	if err != nil {
		return err
	}
	*s = Stream(stream)
	return nil
}

func (s Stream) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

type ColorMode color.Mode

func (m *ColorMode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	mode, err := color.ParseMode(s)
	if err != nil {
		return err
	}
	*m = ColorMode(mode)
	return nil
}

func (m ColorMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}
