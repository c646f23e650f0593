package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
)

const authTokenTTL = 60 * time.Minute

// AuthTokenWrapper is the JWT claim set carried in the auth cookie.
type AuthTokenWrapper struct {
	UserID int64  `json:"user_id"`
	Secret string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	now := time.Now()
	wrapper.IssuedAt = now.Unix()
	wrapper.ExpiresAt = now.Add(authTokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}

func ParseAuthToken(tokenStr string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(tokenStr, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrUnauthorized
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
