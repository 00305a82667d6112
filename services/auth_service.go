package services

import (
	"context"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"google.golang.org/api/idtoken"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

func refreshSecretKey() []byte {
	return []byte(os.Getenv("REFRESH_SECRET_KEY"))
}

// GenerateToken signs a HS256 token for the given user.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey()
	} else {
		secretKeyToUse = refreshSecretKey()
	}

	return token.SignedString(secretKeyToUse)
}

// VerifyGoogleIDToken validates a Google sign-in token against our client id.
func VerifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(context.Background(), tokenId, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, err
	}
	return payload, nil
}
