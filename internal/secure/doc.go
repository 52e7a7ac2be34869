// Package secure provides memory hygiene for password material.
//
// A Buffer owns a fixed-length byte slice that is overwritten with zeros
// when it is destroyed. Callers acquire a buffer and immediately defer its
// Destroy so the wipe happens on every exit path:
//
//	buf := secure.NewBuffer(n)
//	defer buf.Destroy()
//
// Memory safety:
//   - Buffers are used by pointer only; copying one would alias its storage
//   - Bytes() returns the backing slice, which must not outlive Destroy
//   - Use ClearBytes() to zero any other sensitive slice after use
//
// The Go runtime may move or copy memory behind the program's back (stack
// growth, GC), so wiping is best effort against memory disclosure. It is not
// a guarantee that no other copy ever existed.
package secure
