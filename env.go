package mailjet

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the account API keys.
const (
	PublicKeyEnvVar  = "MJ_APIKEY_PUBLIC"
	PrivateKeyEnvVar = "MJ_APIKEY_PRIVATE"
)

// FromEnv builds a Client from the MJ_APIKEY_PUBLIC and
// MJ_APIKEY_PRIVATE environment variables. A .env file in the working
// directory is loaded first when present.
func FromEnv(version SendAPIVersion, opts ...Option) (*Client, error) {
	_ = godotenv.Load()

	publicKey, err := lookupKey(PublicKeyEnvVar)
	if err != nil {
		return nil, err
	}
	privateKey, err := lookupKey(PrivateKeyEnvVar)
	if err != nil {
		return nil, err
	}

	return NewClient(version, publicKey, privateKey, opts...)
}

func lookupKey(name string) (string, error) {
	val, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(val) == "" {
		return "", fmt.Errorf("mailjet: missing %q environment variable", name)
	}
	return strings.TrimSpace(val), nil
}
