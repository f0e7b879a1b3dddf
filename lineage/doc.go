// Package lineage walks a transformation graph from any root down to
// its source leaves and fires each leaf's lineage-recording hook,
// answering "which storage backends feed this pipeline?" for auditing
// and debugging.
//
// What
//
//   - Traverse(root, opts...): visit every node reachable from root.
//   - Nodes exposing core.ChildLister are descended into; nodes
//     exposing core.LineageRecorder get RecordLineage fired exactly
//     once per call. Shared sub-nodes (DAG shapes) are visited once,
//     tracked by node identity.
//   - Returns a Report with the visited source leaves and the maximum
//     depth reached.
//   - WithOnSource installs a caller-side hook fired per leaf after
//     RecordLineage; returning an error aborts the walk.
//
// Why
//
//   - Lineage is provenance: a training run should be able to state
//     exactly which sources it consumed, however deeply they are
//     buried under views and transformations.
//   - Silent omission defeats auditing, so a node exposing neither
//     children nor a recording hook fails the walk loudly with a
//     StructuralError naming the offender — traversal never skips it.
//
// Ordering
//
//	Visit order is unspecified and must not be relied upon. The only
//	contract is that every reachable leaf is recorded exactly once.
//
// Errors
//
//   - ErrNilRoot             - Traverse called with a nil root.
//   - ErrStructuralViolation - a visited node exposes neither children
//     nor a lineage hook (wrapped by StructuralError).
//   - any error returned by the WithOnSource hook.
//
// Complexity (N = nodes reachable from root)
//
//   - Time:   O(N) plus hook costs.
//   - Memory: O(N) for the identity-visited set and recursion.
package lineage
