package nft

import "github.com/MixinNetwork/mixin/crypto"

const MinterSetName = "minters"

// CollectionKey namespaces a nested collection by the digest of its name,
// so owner sets and role sets never share keys with each other.
func CollectionKey(name string) crypto.Hash {
	return crypto.NewHash([]byte(name))
}
