package security

import (
	"github.com/jhoicas/master-auth-service/internal/application/ports"
	"github.com/jhoicas/master-auth-service/pkg/jwt"
)

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// JWTIssuer adapta jwt.Signer al puerto TokenIssuer.
type JWTIssuer struct {
	signer *jwt.Signer
}

func NewJWTIssuer(signer *jwt.Signer) *JWTIssuer {
	return &JWTIssuer{signer: signer}
}

func (i *JWTIssuer) Issue(sub ports.TokenSubject) (ports.IssuedToken, error) {
	token, expiresAt, err := i.signer.Generate(sub.UserID, sub.Email.String(), sub.Role.String())
	if err != nil {
		return ports.IssuedToken{}, err
	}
	return ports.IssuedToken{Token: token, ExpiresAt: expiresAt}, nil
}
