package access

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cashmonitor-dev/cashmonitor/internal/store"
)

const pinStateFile = "pin.json"

// AuthError marks a rejected PIN or reset-code check. The stored state is
// unchanged when one is returned.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authorization failed: " + e.Reason
}

// Guard gates edit and delete operations behind a PIN. Only bcrypt hashes
// of the PIN and the reset code ever touch disk; the plaintext is neither
// stored nor logged.
type Guard struct {
	path string
}

// NewGuard creates a Guard storing its state under dataDir.
func NewGuard(dataDir string) *Guard {
	return &Guard{path: filepath.Join(dataDir, pinStateFile)}
}

type pinState struct {
	PinHash       string `json:"pin_hash,omitempty"`
	ResetCodeHash string `json:"reset_code_hash,omitempty"`
}

func (g *Guard) load() (pinState, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return pinState{}, nil
	}
	if err != nil {
		return pinState{}, fmt.Errorf("reading pin state %s: %w", g.path, err)
	}

	var state pinState
	if err := json.Unmarshal(data, &state); err != nil {
		return pinState{}, &store.ParseError{Path: g.path, Err: err}
	}
	return state, nil
}

func (g *Guard) save(state pinState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling pin state: %w", err)
	}
	if err := store.WriteFileAtomic(g.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing pin state: %w", err)
	}
	return nil
}

// PinSet reports whether a PIN has been configured.
func (g *Guard) PinSet() (bool, error) {
	state, err := g.load()
	if err != nil {
		return false, err
	}
	return state.PinHash != "", nil
}

// validatePin enforces the 4-6 digit PIN format.
func validatePin(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return errors.New("pin must be 4-6 digits")
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return errors.New("pin must be 4-6 digits")
		}
	}
	return nil
}

// SetPin sets or replaces the PIN. When a PIN already exists, oldPin must
// verify against it first.
func (g *Guard) SetPin(oldPin, newPin string) error {
	if err := validatePin(newPin); err != nil {
		return err
	}

	state, err := g.load()
	if err != nil {
		return err
	}

	if state.PinHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(state.PinHash), []byte(oldPin)) != nil {
			return &AuthError{Reason: "old pin does not match"}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing pin: %w", err)
	}
	state.PinHash = string(hash)
	return g.save(state)
}

// Verify checks a PIN against the stored hash. With no PIN configured every
// check passes, matching the behavior before a PIN is set up.
func (g *Guard) Verify(pin string) (bool, error) {
	state, err := g.load()
	if err != nil {
		return false, err
	}
	if state.PinHash == "" {
		return true, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(state.PinHash), []byte(pin)) == nil, nil
}

// EnsureResetCode generates and stores a reset code if none exists yet,
// returning the plaintext code exactly once for display. Returns "" when a
// code is already configured.
func (g *Guard) EnsureResetCode() (string, error) {
	state, err := g.load()
	if err != nil {
		return "", err
	}
	if state.ResetCodeHash != "" {
		return "", nil
	}

	code := newResetCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing reset code: %w", err)
	}
	state.ResetCodeHash = string(hash)
	if err := g.save(state); err != nil {
		return "", err
	}
	return code, nil
}

// newResetCode derives a human-typable code from a fresh UUID.
func newResetCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("CASH-%s-%s", raw[:6], raw[6:12])
}

// ResetWithCode replaces the PIN after a successful reset-code check. The
// old PIN is not required. Each code works exactly once: a successful
// reset rotates it, and the replacement code is returned for display.
func (g *Guard) ResetWithCode(code, newPin string) (string, error) {
	if err := validatePin(newPin); err != nil {
		return "", err
	}

	state, err := g.load()
	if err != nil {
		return "", err
	}

	if state.ResetCodeHash == "" {
		return "", &AuthError{Reason: "no reset code configured"}
	}
	if bcrypt.CompareHashAndPassword([]byte(state.ResetCodeHash), []byte(code)) != nil {
		return "", &AuthError{Reason: "reset code does not match"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing pin: %w", err)
	}
	state.PinHash = string(hash)

	next := newResetCode()
	nextHash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing reset code: %w", err)
	}
	state.ResetCodeHash = string(nextHash)

	if err := g.save(state); err != nil {
		return "", err
	}
	return next, nil
}
