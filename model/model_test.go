package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSpecDisplayLabel(t *testing.T) {
	tests := []struct {
		name string
		spec FieldSpec
		want string
	}{
		{name: "label set", spec: FieldSpec{Key: "host", Label: "Hostname"}, want: "Hostname"},
		{name: "falls back to key", spec: FieldSpec{Key: "host"}, want: "host"},
		{name: "empty spec", spec: FieldSpec{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.DisplayLabel())
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	rootErr := errors.New("boom")
	exitErr := NewExitError(UnknownError, rootErr)

	require.NotNil(t, exitErr)
	assert.Equal(t, rootErr, exitErr.Err)
	assert.Contains(t, exitErr.Error(), "exit code 1")

	code, cause := ExitCodeFromError(exitErr)
	assert.Equal(t, UnknownError, code)
	assert.Equal(t, rootErr, cause)
}

func TestExitCodeFromNonExitError(t *testing.T) {
	plainErr := errors.New("plain")

	code, cause := ExitCodeFromError(plainErr)
	assert.Equal(t, UnknownError, code)
	assert.Equal(t, plainErr, cause)
}

func TestExitCodeFromNilCause(t *testing.T) {
	exitErr := NewExitError(UserCanceled, nil)

	code, cause := ExitCodeFromError(exitErr)
	assert.Equal(t, UserCanceled, code)
	assert.Nil(t, cause)
}
