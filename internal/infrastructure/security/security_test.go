package security_test

import (
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/master-auth-service/internal/application/ports"
	"github.com/jhoicas/master-auth-service/internal/domain/types"
	"github.com/jhoicas/master-auth-service/internal/infrastructure/security"
	"github.com/jhoicas/master-auth-service/pkg/jwt"
)

func mustPassword(t *testing.T, raw string) types.Password {
	t.Helper()
	p, f := types.NewPassword(raw)
	require.Nil(t, f)
	return p
}

func TestEncoders_HashYVerify(t *testing.T) {
	encoders := map[string]ports.PasswordEncoder{
		"bcrypt":   security.NewBcryptEncoder(bcrypt.MinCost),
		"argon2id": security.NewArgon2idEncoder(),
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			hash, err := enc.Hash(mustPassword(t, "Str0ng!Pass"))
			require.NoError(t, err)
			assert.NotContains(t, hash.Encoded(), "Str0ng!Pass")

			ok, err := enc.Verify(mustPassword(t, "Str0ng!Pass"), hash)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = enc.Verify(mustPassword(t, "Wr0ng!Pass"), hash)
			require.NoError(t, err)
			assert.False(t, ok, "contraseña incorrecta es (false, nil), no error")
		})
	}
}

func TestArgon2id_HashConSalAleatoria(t *testing.T) {
	enc := security.NewArgon2idEncoder()
	a, err := enc.Hash(mustPassword(t, "Str0ng!Pass"))
	require.NoError(t, err)
	b, err := enc.Hash(mustPassword(t, "Str0ng!Pass"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Encoded(), b.Encoded())
	assert.True(t, strings.HasPrefix(a.Encoded(), "$argon2id$v=19$m=65536,t=1,p=4$"))
}

func TestArgon2id_HashIlegible(t *testing.T) {
	_, err := security.NewArgon2idEncoder().Verify(mustPassword(t, "Str0ng!Pass"), types.NewPasswordHash("not-a-hash"))
	assert.Error(t, err)
}

func TestNewPasswordEncoder_VerificaAmbosFormatos(t *testing.T) {
	bcryptEnc, err := security.NewPasswordEncoder(security.HasherBcrypt, bcrypt.MinCost)
	require.NoError(t, err)
	argonEnc, err := security.NewPasswordEncoder(security.HasherArgon2id, bcrypt.MinCost)
	require.NoError(t, err)

	p := mustPassword(t, "Str0ng!Pass")
	legacy, err := bcryptEnc.Hash(p)
	require.NoError(t, err)

	ok, err := argonEnc.Verify(p, legacy)
	require.NoError(t, err)
	assert.True(t, ok, "argon2id sigue verificando hashes bcrypt existentes")

	fresh, err := argonEnc.Hash(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fresh.Encoded(), "$argon2id$"))

	ok, err = bcryptEnc.Verify(p, fresh)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = security.NewPasswordEncoder("md5", 0)
	assert.Error(t, err)
}

func TestJWTIssuer_Issue(t *testing.T) {
	signer, err := jwt.NewSigner("issuer-test-secret", "master-auth", 15, clockwork.NewFakeClock())
	require.NoError(t, err)
	email, f := types.NewEmail("ada@example.com")
	require.Nil(t, f)

	out, err := security.NewJWTIssuer(signer).Issue(ports.TokenSubject{UserID: 9, Email: email, Role: types.RoleSuperAdmin})
	require.NoError(t, err)

	claims, err := signer.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
	assert.Equal(t, "ROLE_SUPER_ADMIN", claims.Role)
	assert.True(t, out.ExpiresAt.Equal(claims.ExpiresAt.Time))
}
