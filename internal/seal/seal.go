// Package seal provides the key that guards type-level reference counts and
// token creation. Only packages of this module can import it, so only they
// can obtain K. The zero Key is rejected at run time.
package seal

// Key unlocks guarded operations. Other packages cannot write a Key value
// and the zero value is not a valid key.
type Key struct {
	k *key
}

type key struct{ _ byte }

var unlocked key

// K is the one valid key.
var K = Key{k: &unlocked}

// Check panics unless k is K.
func (k Key) Check() {
	if k.k != &unlocked {
		panic("seal: invalid key")
	}
}
