package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
)

func TestNewPassword(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want failure.PasswordFailure
	}{
		{"válida", "Password123!", nil},
		{"válida con símbolo", "pa$$w0RD", nil},
		{"vacía", "", failure.PasswordEmpty{}},
		{"corta", "Pa1!", failure.PasswordTooShort{Min: types.PasswordMinLength}},
		{"larga", "Aa1!" + strings.Repeat("x", 69), failure.PasswordTooLong{Max: types.PasswordMaxLength}},
		{"sin mayúscula", "password123!", failure.PasswordMissingUppercase{}},
		{"sin minúscula", "PASSWORD123!", failure.PasswordMissingLowercase{}},
		{"sin dígito", "Password!!", failure.PasswordMissingDigit{}},
		{"sin especial", "Password123", failure.PasswordMissingSpecialCharacter{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, f := types.NewPassword(tc.raw)
			if tc.want == nil {
				require.Nil(t, f)
				assert.Equal(t, tc.raw, p.Plaintext())
				return
			}
			assert.Equal(t, tc.want, f)
		})
	}
}

func TestPassword_StringNoExponeValor(t *testing.T) {
	p, f := types.NewPassword("Password123!")
	require.Nil(t, f)
	assert.NotContains(t, p.String(), "Password123!")
	assert.NotContains(t, types.NewPasswordHash("$2a$10$abc").String(), "$2a$")
}
