// Package secure keeps secret values protected while they sit in process
// memory between the credential store boundary and output.
//
// Values are sealed into a memguard enclave: encrypted at rest in memory,
// locked against swapping where the platform allows it, and wiped on
// destruction. Plaintext only exists inside the window between Open and
// the returned destroy func.
//
// main should defer Purge so an exiting process leaves nothing behind.
package secure

import (
	"github.com/awnumar/memguard"
)

// Value is a sealed secret.
type Value struct {
	enclave *memguard.Enclave
}

// Seal copies the secret into a protected enclave. The caller should stop
// using the input afterwards; Seal wipes it.
func Seal(secret []byte) *Value {
	// memguard.NewEnclave wipes the source buffer after copying.
	return &Value{enclave: memguard.NewEnclave(secret)}
}

// SealString seals a secret already held as a string. The string itself
// cannot be wiped; use Seal with a byte slice when the call site allows it.
func SealString(secret string) *Value {
	return Seal([]byte(secret))
}

// Open decrypts the value and returns the plaintext together with a
// destroy func the caller must invoke once the plaintext is no longer
// needed.
func (v *Value) Open() (string, func(), error) {
	buf, err := v.enclave.Open()
	if err != nil {
		return "", func() {}, err
	}
	return buf.String(), buf.Destroy, nil
}

// Purge wipes every sealed value in the process. Call it on exit.
func Purge() {
	memguard.Purge()
}

// HandleInterrupts installs a signal handler that wipes sealed values
// before the process dies to an interrupt.
func HandleInterrupts() {
	memguard.CatchInterrupt()
}
