package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOffset(t *testing.T) {
	cases := map[string]int{
		"+05:30": 330,
		"+00:00": 0,
		"-03:00": -180,
		"+14:00": 840,
	}
	for input, want := range cases {
		got, err := ParseOffset(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	for _, input := range []string{"", "05:30", "+5:30", "+05.30", "+15:00", "+05:75"} {
		_, err := ParseOffset(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		JWT:   JWTConfig{Secret: "s"},
		Mongo: MongoConfig{URI: "mongodb://localhost:27017", Database: "rise_hr"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.JWT.Secret = ""
	assert.Error(t, cfg.Validate())
}
