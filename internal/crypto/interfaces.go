package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_provider_mock.go -package=mock

// KeyProvider resolves the shared secret a device signs its requests with.
//
// The key is either provisioned directly as hex, or derived from a
// provisioning passphrase with Argon2id using the device serial as salt, so
// the ingest service can derive the same key from the same inputs. The key
// never leaves the device and is never logged.
type KeyProvider interface {
	// DeviceKey returns the key for serial. hexKey wins when both hexKey and
	// passphrase are set. Returns [ErrNoKeyMaterial] when both are empty.
	DeviceKey(serial, hexKey, passphrase string) ([]byte, error)

	// DeriveKey derives a key from passphrase and serial with Argon2id.
	DeriveKey(passphrase, serial string) []byte
}
