package authentication

// keystring.go keeps the session token in the OS keyring, on the client side.
import (
	"encoding/json"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "fightcard-cli"
	tokenKey    = "session"
)

type StoredCredentials struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func StoreTokens(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func GetTokens() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if err != nil {
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// DeleteTokens forgets the stored session; nothing stored is not an error.
func DeleteTokens() error {
	err := keyring.Delete(serviceName, tokenKey)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}
