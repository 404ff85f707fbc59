package browser

// OpaqueOrigin is the serialization of an opaque origin.
const OpaqueOrigin = "null"

// Environment is a read-only view of the context the ceremony ran in.
type Environment interface {
	// Origin returns the serialized origin of the current document.
	Origin() string

	// Hostname returns the effective domain of the current document.
	Hostname() string

	// SupportsWebAuthn reports whether the WebAuthn API is available.
	SupportsWebAuthn() bool
}

// StaticEnvironment is an Environment with fixed values.
type StaticEnvironment struct {
	// OriginValue is returned by Origin. Use OpaqueOrigin for sandboxed documents.
	OriginValue string

	// HostnameValue is returned by Hostname.
	HostnameValue string

	// WebAuthn is returned by SupportsWebAuthn.
	WebAuthn bool
}

// Origin returns OriginValue.
func (e StaticEnvironment) Origin() string {
	return e.OriginValue
}

// Hostname returns HostnameValue.
func (e StaticEnvironment) Hostname() string {
	return e.HostnameValue
}

// SupportsWebAuthn returns WebAuthn.
func (e StaticEnvironment) SupportsWebAuthn() bool {
	return e.WebAuthn
}
