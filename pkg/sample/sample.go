// Package sample builds the two reference programs used to benchmark the
// three backends: a Fibonacci iteration and an insertion sort followed by an
// alternating sum. Building trees is sugar: these functions' only contract
// is to produce a valid tree.Node.
package sample

import "github.com/chazu/numvm/pkg/tree"

// Fibonacci builds an iterative Fibonacci loop: memory[0] holds the
// iteration count on entry; set m[1]=0, m[2]=1; while m[0]!=0: m[3]=m[1]+m[2];
// m[1]=m[2]; m[2]=m[3]; m[0]=m[0]-1; return m[1].
func Fibonacci() tree.Node {
	return tree.Seq(
		tree.StoreAt(1, tree.Int(0)),
		tree.StoreAt(2, tree.Int(1)),
		tree.WhileNode(
			tree.NeqN(tree.LoadAt(0), tree.Int(0)),
			tree.Seq(
				tree.StoreAt(3, tree.AddN(tree.LoadAt(1), tree.LoadAt(2))),
				tree.StoreAt(1, tree.LoadAt(2)),
				tree.StoreAt(2, tree.LoadAt(3)),
				tree.StoreAt(0, tree.SubN(tree.LoadAt(0), tree.Int(1))),
			),
		),
		tree.LoadAt(1),
	)
}

// InsertionSortAlternatingSum builds an insertion sort over memory[0..n]:
// memory[0] holds the element count n; memory[1..n] hold the values to sort
// in place, ascending. After sorting, the result is the sum of memory at the
// odd 1-based indices 1, 3, 5, ..., up to the last one <= n.
//
// n fixes where the scratch cells (loop index, insertion cursor, the value
// being inserted, and the running sum) live, so n must be known when the
// tree is built — matching the builder-sugar contract that it only needs to
// produce a valid tree, not run anything.
func InsertionSortAlternatingSum(n int) tree.Node {
	iCell := n + 1
	jCell := n + 2
	keyCell := n + 3
	sumCell := n + 4

	return tree.Seq(
		// Classic insertion sort over memory[1..n], ascending.
		tree.StoreAt(iCell, tree.Int(2)),
		tree.WhileNode(
			tree.LteN(tree.LoadAt(iCell), tree.LoadAt(0)),
			tree.Seq(
				tree.StoreAt(keyCell, tree.LoadIndirect(tree.LoadAt(iCell))),
				tree.StoreAt(jCell, tree.SubN(tree.LoadAt(iCell), tree.Int(1))),
				tree.WhileNode(
					tree.AndN(
						tree.GteN(tree.LoadAt(jCell), tree.Int(1)),
						tree.GtN(tree.LoadIndirect(tree.LoadAt(jCell)), tree.LoadAt(keyCell)),
					),
					tree.Seq(
						tree.StoreIndirect(tree.AddN(tree.LoadAt(jCell), tree.Int(1)), tree.LoadIndirect(tree.LoadAt(jCell))),
						tree.StoreAt(jCell, tree.SubN(tree.LoadAt(jCell), tree.Int(1))),
					),
				),
				tree.StoreIndirect(tree.AddN(tree.LoadAt(jCell), tree.Int(1)), tree.LoadAt(keyCell)),
				tree.StoreAt(iCell, tree.AddN(tree.LoadAt(iCell), tree.Int(1))),
			),
		),
		// Alternating sum of memory[1], memory[3], memory[5], ...
		tree.StoreAt(iCell, tree.Int(1)),
		tree.StoreAt(sumCell, tree.Int(0)),
		tree.WhileNode(
			tree.LteN(tree.LoadAt(iCell), tree.LoadAt(0)),
			tree.Seq(
				tree.StoreAt(sumCell, tree.AddN(tree.LoadAt(sumCell), tree.LoadIndirect(tree.LoadAt(iCell)))),
				tree.StoreAt(iCell, tree.AddN(tree.LoadAt(iCell), tree.Int(2))),
			),
		),
		tree.LoadAt(sumCell),
	)
}

// SeedInsertionInput writes memory[0]=n and memory[i]=n-i for i in [1,n],
// the standard worst-case-ordering input for InsertionSortAlternatingSum.
func SeedInsertionInput(store func(i int, v float64) error, n int) error {
	if err := store(0, float64(n)); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		if err := store(i, float64(n-i)); err != nil {
			return err
		}
	}
	return nil
}
