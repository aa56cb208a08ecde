// Package envstore implements a read-only preference store over the
// process environment, optionally seeded from dotenv files. It covers the
// "OS-provided defaults" role: values injected from the outside that an
// application reads through the same accessor API as its own settings.
package envstore
