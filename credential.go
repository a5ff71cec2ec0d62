package cwsummary

import "context"

// APIKeyName is the config key holding the language model API key.
const APIKeyName = "COURSEWARE_GPT_API_KEY"

// ConfigStore is a key-value configuration store scoped by range.
type ConfigStore interface {
	// GetValue returns the value stored under key for the range.
	// Returns ENOTFOUND if the key is unset.
	GetValue(ctx context.Context, rangeID, key string) (string, error)

	// StoreValue writes value under key for the range.
	StoreValue(ctx context.Context, rangeID, key, value string) error
}

// APIKey returns the API key configured for the range. ok is false when no
// key has been stored; that is not an error.
func APIKey(ctx context.Context, store ConfigStore, rangeID string) (value string, ok bool, err error) {
	value, err = store.GetValue(ctx, rangeID, APIKeyName)
	if ErrorCode(err) == ENOTFOUND {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// StoreAPIKey stores the API key for the range. The value is not validated.
func StoreAPIKey(ctx context.Context, store ConfigStore, rangeID, value string) error {
	return store.StoreValue(ctx, rangeID, APIKeyName, value)
}
