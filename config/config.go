package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sporadisk/prayercal/parameter"
	"gopkg.in/yaml.v3"
)

const (
	AsrStandard = "standard"
	AsrHanafi   = "hanafi"

	defaultOutput = "prayer_times.csv"
)

type Config struct {
	// Location the prayer times are calculated for, as a street address.
	Address string `yaml:"address"`

	// Year the calendar covers. Defaults to the current year.
	Year int `yaml:"year"`

	// Sun angles (degrees below the horizon) used for the twilight prayers.
	FajrAngle float64 `yaml:"fajrAngle"`
	IshaAngle float64 `yaml:"ishaAngle"`

	// Asr juristic method: "standard" or "hanafi".
	AsrMethod string `yaml:"asrMethod"`

	// Event window: minutes before the prayer time that the calendar block
	// starts, and minutes after it that the block ends.
	MinutesBefore int  `yaml:"minutesBefore"`
	MinutesAfter  *int `yaml:"minutesAfter"`

	// How many months to fetch, starting from January. Defaults to 12.
	Months int `yaml:"months"`

	// Path of the CSV file to write.
	Output string `yaml:"output"`
}

// LagMinutes returns the configured minutesAfter, or 5 when unset. A pointer
// field keeps an explicit 0 distinguishable from "not configured".
func (c *Config) LagMinutes() int {
	if c.MinutesAfter == nil {
		return 5
	}
	return *c.MinutesAfter
}

// Load reads the config file at path, or ".prayercal.yaml" when path is
// empty. Values from the environment (and a .env file, if present) override
// the file. Defaults are applied and the result validated before returning.
func Load(path string) (*Config, error) {
	useDefaultConf := (path == "")

	if useDefaultConf {
		path = ".prayercal.yaml"
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either.
			// Environment variables may still fill in the blanks.
			return finishLoad(&conf)
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return finishLoad(&conf)
}

func finishLoad(conf *Config) (*Config, error) {
	// godotenv will not override variables that are already set, and a
	// missing .env file is not an error.
	_ = godotenv.Load()

	applyEnvOverrides(conf)
	applyDefaults(conf)

	err := validate(conf)
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func applyEnvOverrides(conf *Config) {
	if addr := os.Getenv("PRAYERCAL_ADDRESS"); addr != "" {
		conf.Address = addr
	}

	if yearStr := os.Getenv("PRAYERCAL_YEAR"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err == nil {
			conf.Year = year
		}
	}

	if out := os.Getenv("PRAYERCAL_OUTPUT"); out != "" {
		conf.Output = out
	}
}

func applyDefaults(conf *Config) {
	if conf.Year == 0 {
		conf.Year = time.Now().Year()
	}

	if conf.FajrAngle == 0 {
		conf.FajrAngle = 15.0
	}

	if conf.IshaAngle == 0 {
		conf.IshaAngle = 15.0
	}

	if conf.AsrMethod == "" {
		conf.AsrMethod = AsrStandard
	}

	if conf.Months == 0 {
		conf.Months = 12
	}

	if conf.Output == "" {
		conf.Output = defaultOutput
	}
}

func validate(conf *Config) error {
	if conf.Address == "" {
		return fmt.Errorf("no address configured: set \"address\" in the config file or PRAYERCAL_ADDRESS in the environment")
	}

	asrMethod, err := parameter.Validate(conf.AsrMethod, []string{AsrStandard, AsrHanafi})
	if err != nil {
		return fmt.Errorf("validation failure for asr method: %w", err)
	}
	conf.AsrMethod = asrMethod

	if conf.Months < 1 || conf.Months > 12 {
		return fmt.Errorf("months must be between 1 and 12, got %d", conf.Months)
	}

	if conf.MinutesBefore < 0 {
		return fmt.Errorf("minutesBefore must not be negative, got %d", conf.MinutesBefore)
	}

	if conf.LagMinutes() < 0 {
		return fmt.Errorf("minutesAfter must not be negative, got %d", conf.LagMinutes())
	}

	return nil
}
