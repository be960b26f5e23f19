package bip32

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type path struct {
	isPrivate bool
	indexes   []uint32
}

// parsePath parses a derivation path of the form m/1'/2/3. An apostrophe
// suffix marks a hardened component and maps it to index + 2^31. An M root
// denotes a path to a neutered key.
func parsePath(pathString string) (*path, error) {
	parts := strings.Split(pathString, "/")

	isPrivate := false
	switch strings.TrimSpace(parts[0]) {
	case "m":
		isPrivate = true
	case "M":
		isPrivate = false
	default:
		return nil, errors.Errorf("%s is an invalid extended key type", parts[0])
	}

	indexParts := parts[1:]
	indexes := make([]uint32, len(indexParts))
	for i, part := range indexParts {
		index, err := parseIndex(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		indexes[i] = index
	}

	return &path{
		isPrivate: isPrivate,
		indexes:   indexes,
	}, nil
}

func parseIndex(indexString string) (uint32, error) {
	const hardenedSuffix = "'"
	isHardened := strings.HasSuffix(indexString, hardenedSuffix)
	trimmedIndexString := strings.TrimSuffix(indexString, hardenedSuffix)

	index, err := strconv.ParseUint(trimmedIndexString, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "index %s does not fit in 32 bits", indexString)
		}

		return 0, errors.Errorf("could not parse index %s", indexString)
	}

	if isHardened {
		if index >= hardenedIndexStart {
			return 0, errors.Wrapf(ErrIndexOutOfRange,
				"hardened index %s is above the hardened index tier", indexString)
		}

		return uint32(index) + hardenedIndexStart, nil
	}

	return uint32(index), nil
}

// Path derives the descendant extended key at the given path string. The walk
// is strictly sequential: each step's output is the next step's input, and
// each child records the fingerprint of the node it was derived from.
func (extKey *ExtendedKey) Path(pathString string) (*ExtendedKey, error) {
	path, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}

	if !path.isPrivate {
		return extKey.pathPublic(path)
	}

	return extKey.path(path)
}

func (extKey *ExtendedKey) path(path *path) (*ExtendedKey, error) {
	descendantExtKey := extKey
	for _, index := range path.indexes {
		var err error
		descendantExtKey, err = descendantExtKey.Child(index)
		if err != nil {
			return nil, err
		}
	}

	return descendantExtKey, nil
}

func (extKey *ExtendedKey) pathPublic(path *path) (*ExtendedKey, error) {
	descendantExtKey, err := extKey.path(path)
	if err != nil {
		return nil, err
	}

	return descendantExtKey.Public()
}
