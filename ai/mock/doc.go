// Package mock provides configurable test doubles for the ai interfaces.
// Behavior is injected via function fields; unset fields fall back to
// deterministic defaults.
package mock
