package pdf

import (
	"fmt"
	"os"
	"path/filepath"
)

// Archive stores rendered offer letters on local disk, keyed by the seller's
// email address. A later letter for the same address overwrites the earlier
// one; no history is kept. The address is interpolated into the file name
// as-is.
type Archive struct {
	dir string
}

// NewArchive ensures the offers directory exists and returns an archive over it.
func NewArchive(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create offers dir %s: %w", dir, err)
	}
	return &Archive{dir: dir}, nil
}

// Path returns the letter location for a seller address. The path is a pure
// function of the address: <dir>/<seller_email>_offer.pdf.
func (a *Archive) Path(sellerEmail string) string {
	return filepath.Join(a.dir, sellerEmail+"_offer.pdf")
}

// Save writes the letter to its deterministic path, overwriting any previous
// letter for the same address, and returns that path.
func (a *Archive) Save(sellerEmail string, letter []byte) (string, error) {
	path := a.Path(sellerEmail)
	if err := os.WriteFile(path, letter, 0o644); err != nil {
		return "", fmt.Errorf("write offer letter %s: %w", path, err)
	}
	return path, nil
}

// Read loads a previously saved letter, used when attaching it to the
// outbound email.
func (a *Archive) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read offer letter %s: %w", path, err)
	}
	return data, nil
}
