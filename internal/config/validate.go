package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Field rules come from `validate` struct tags; cross-field and duration
// rules are checked here.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return describe(err)
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"rate_limit.cleanup_interval", c.RateLimit.CleanupInterval},
		{"dictionary.runtime_ttl", c.Dictionary.RuntimeTTL},
		{"dictionary.request_timeout", c.Dictionary.RequestTimeout},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s must be > 0 (got %v)", d.name, d.d)
		}
	}

	if c.Dictionary.NegativeTTL < 0 {
		return fmt.Errorf("dictionary.negative_ttl must be >= 0 (got %v)", c.Dictionary.NegativeTTL)
	}
	if c.Builder.Delay < 0 {
		return fmt.Errorf("builder.delay must be >= 0 (got %v)", c.Builder.Delay)
	}
	if len(c.Dictionary.Languages()) == 0 {
		return fmt.Errorf("dictionary.preferred_languages must name at least one language")
	}

	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
