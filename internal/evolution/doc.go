// Package evolution looks up Swift Evolution proposals from a local
// mirror of the proposals directory. Proposals are small and the corpus
// is scanned on demand, so the package keeps no index or state.
package evolution
