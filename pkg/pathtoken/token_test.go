package pathtoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/filemonitor/pkg/pathtoken"
)

func TestTokenIs(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		token pathtoken.Token
		input string
		want  bool
	}{
		"exact":            {token: pathtoken.Auto, input: "[Auto]", want: true},
		"case insensitive": {token: pathtoken.Auto, input: "[AUTO]", want: true},
		"surrounding ws":   {token: pathtoken.Auto, input: "  [auto]\t", want: true},
		"embedded":         {token: pathtoken.Auto, input: "[Auto]/logs", want: false},
		"empty":            {token: pathtoken.Separator, input: "", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.token.Is(tc.input))
		})
	}
}

func TestTokenIn(t *testing.T) {
	t.Parallel()

	assert.True(t, pathtoken.Current.In("[RutaActual][DS]A"))
	assert.True(t, pathtoken.Separator.In("[RutaActual][DS]A"))
	assert.False(t, pathtoken.FileName.In("[RutaActual][DS]A"))
	// Containment is case sensitive.
	assert.False(t, pathtoken.Current.In("[rutaactual]"))
}
