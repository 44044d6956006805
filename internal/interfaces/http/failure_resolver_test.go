package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	apphttp "github.com/jhoicas/master-auth-service/internal/interfaces/http"
)

func TestResolveFailure_CodigosPorVariante(t *testing.T) {
	cases := []struct {
		f      failure.Failure
		status int
	}{
		{failure.EmailEmpty{}, http.StatusBadRequest},
		{failure.EmailMissingAtSymbol{}, http.StatusBadRequest},
		{failure.EmailInvalidFormat{}, http.StatusBadRequest},
		{failure.EmailTooShort{Min: 8}, http.StatusBadRequest},
		{failure.EmailTooLong{Max: 254}, http.StatusBadRequest},
		{failure.NameEmpty{}, http.StatusBadRequest},
		{failure.NameTooShort{Min: 2}, http.StatusBadRequest},
		{failure.NameTooLong{Max: 50}, http.StatusBadRequest},
		{failure.NameInvalidFormat{}, http.StatusBadRequest},
		{failure.PasswordEmpty{}, http.StatusBadRequest},
		{failure.PasswordTooShort{Min: 8}, http.StatusBadRequest},
		{failure.PasswordTooLong{Max: 72}, http.StatusBadRequest},
		{failure.PasswordMissingUppercase{}, http.StatusBadRequest},
		{failure.PasswordMissingLowercase{}, http.StatusBadRequest},
		{failure.PasswordMissingDigit{}, http.StatusBadRequest},
		{failure.PasswordMissingSpecialCharacter{}, http.StatusBadRequest},
		{failure.CompanyNameEmpty{}, http.StatusBadRequest},
		{failure.CompanyNameTooShort{Min: 2}, http.StatusBadRequest},
		{failure.CompanyNameTooLong{Max: 100}, http.StatusBadRequest},
		{failure.CompanyNameInvalidFormat{}, http.StatusBadRequest},
		{failure.RoleNameUnknown{}, http.StatusBadRequest},
		{failure.EmailAlreadyExists{}, http.StatusConflict},
		{failure.IdNotExists{}, http.StatusNotFound},
		{failure.RoleNotFound{}, http.StatusNotFound},
		{failure.InvalidCredentials{}, http.StatusBadRequest},
		{failure.AccountLocked{}, http.StatusBadRequest},
		{failure.AccountDisabled{}, http.StatusBadRequest},
		{failure.TooManyAttempts{}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		out := apphttp.ResolveFailure(tc.f)
		assert.Equal(t, tc.status, out.Status, "%T", tc.f)
		assert.Equal(t, tc.f.Message(), out.Body, "%T", tc.f)
	}
}

func TestResolveFailure_MensajesDeNegocio(t *testing.T) {
	assert.Equal(t, apphttp.Outcome{Status: http.StatusConflict, Body: "User with this email already exists."},
		apphttp.ResolveFailure(failure.EmailAlreadyExists{}))
	assert.Equal(t, apphttp.Outcome{Status: http.StatusNotFound, Body: "User with this id does not exist."},
		apphttp.ResolveFailure(failure.IdNotExists{}))
	assert.Equal(t, apphttp.Outcome{Status: http.StatusBadRequest, Body: "Email must contain an @ symbol"},
		apphttp.ResolveFailure(failure.EmailMissingAtSymbol{}))
}
