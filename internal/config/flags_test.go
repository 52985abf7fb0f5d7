package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name    string
		address NetAddress
		want    string
	}{
		{"empty", NetAddress{}, ""},
		{"host and port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"port only", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.address.String())
		})
	}
}

func TestNetAddress_Set_Valid(t *testing.T) {
	var address NetAddress

	require.NoError(t, address.Set("localhost:8080"))

	assert.Equal(t, "localhost", address.Host)
	assert.Equal(t, 8080, address.Port)
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no port", "localhost"},
		{"non-numeric port", "localhost:abc"},
		{"too many parts", "host:1:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var address NetAddress
			assert.Error(t, address.Set(tt.input))
		})
	}
}
