package bizcheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const DefaultMarker = "bizobj/interfaces.BusinessObject"

type Rules struct {
	Hierarchy     bool `json:"hierarchy"`
	ExportedEmbed bool `json:"exportedEmbed"`
	ToMany        bool `json:"toMany"`
}

type Config struct {
	Markers []string `json:"markers"`
	Rules   *Rules   `json:"rules"`
}

func defaultConfig() *Config {
	return &Config{
		Markers: []string{DefaultMarker},
		Rules: &Rules{
			Hierarchy:     true,
			ExportedEmbed: true,
			ToMany:        true,
		},
	}
}

// readConfig loads path when it is set and applies the comma separated
// markers override. An empty path yields the defaults.
func readConfig(path, markers string) (*Config, error) {
	config := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", path)
		}
		var fromFile Config
		err = json.Unmarshal(data, &fromFile)
		if err != nil {
			return nil, errors.Wrapf(err, "error decoding config file %s", path)
		}
		if len(fromFile.Markers) > 0 {
			config.Markers = fromFile.Markers
		}
		if fromFile.Rules != nil {
			config.Rules = fromFile.Rules
		}
	}
	if markers != "" {
		config.Markers = strings.Split(markers, ",")
	}
	err := config.valid()
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (o *Config) valid() error {
	if len(o.Markers) == 0 {
		return fmt.Errorf("at least one marker interface is required")
	}
	var err error
	for _, m := range o.Markers {
		dot := strings.LastIndex(m, ".")
		if dot <= 0 || dot == len(m)-1 || strings.HasSuffix(m[:dot], "/") {
			if err != nil {
				err = fmt.Errorf("%w\nthe marker %q is not of the form import/path.TypeName", err, m)
			} else {
				err = fmt.Errorf("the marker %q is not of the form import/path.TypeName", m)
			}
		}
	}
	return err
}
