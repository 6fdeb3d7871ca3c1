package imagebuild

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
)

var ErrBaseImageNotFound = errors.New("base image not found")

// CheckBaseImage resolves ref in its registry without pulling it.
func CheckBaseImage(ctx context.Context, ref string, opts ...remote.Option) (string, error) {
	parsed, err := name.ParseReference(ref)
	if err != nil {
		return "", fmt.Errorf("invalid base image %q: %w", ref, err)
	}

	opts = append([]remote.Option{
		remote.WithContext(ctx),
		remote.WithAuthFromKeychain(authn.DefaultKeychain),
	}, opts...)

	desc, err := remote.Head(parsed, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBaseImageNotFound, ref, err)
	}

	return desc.Digest.String(), nil
}
