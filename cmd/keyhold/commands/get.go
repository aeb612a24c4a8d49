package commands

import (
	"github.com/systmms/keyhold/internal/config"
)

// RunGet implements the bare default command: look up a key, print the
// password, optionally copy it to the clipboard.
//
// Ambiguity is resolved by the user, never by the tool: a bare key that
// matches several entries prints the candidates and succeeds without
// touching the credential store.
func RunGet(cfg *config.Config, key, tag string, copyToClipboard bool) error {
	v, err := newVault(cfg)
	if err != nil {
		return err
	}

	result, err := v.Get(key, tag)
	if err != nil {
		return err
	}

	if result.Ambiguous() {
		printAmbiguity(cfg, key, result.Candidates)
		return nil
	}

	plaintext, destroy, err := result.Secret.Open()
	if err != nil {
		return err
	}
	defer destroy()

	say(cfg, "The password for %q is %q.", result.Entry.Identifier(), plaintext)

	if copyToClipboard {
		// The get already succeeded; a clipboard failure propagates but
		// rolls nothing back.
		if err := cfg.ClipboardWriter().WriteText(plaintext); err != nil {
			return err
		}
		say(cfg, "Copied to the clipboard!")
	}

	return nil
}
