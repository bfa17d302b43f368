// Package rewrite implements the passes that hoist control-transfer points to
// the top level of a begin sequence.
//
// Every pass rewrites bottom-up: the children of a subtree are normalized
// first, then the rebuilt subtree is matched against the pass's target form.
//
//	CallExpander      (call k a...)       -> capture, invoke k, label the return point
//	YieldExpander     (yield a...)        -> same, invoking @return-continuation
//	LetCallExpander   (let/call n k a)    -> bind the captured continuation to n first
//	IfFlattener       if with an entry in a branch -> goto/label sequence
//	EntryFlattener    arguments containing entries -> ordered temporaries
//	BindingFlattener  (set!|define r (begin s... v)) -> (begin s... (set!|define r v))
//	SequenceFlattener (begin ... (begin s...) ...)    -> spliced
//
// A Pipeline runs its passes repeatedly until the tree stops changing or the
// iteration cap is reached. NewStandardPipeline assembles the full
// normalization; NewEntryFlattenPipeline groups the three expression
// flatteners, which converge together.
//
// All passes of one run share a Context, whose Namer supplies fresh labels and
// temporaries in a single monotonic sequence.
package rewrite
