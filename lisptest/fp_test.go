package lisptest

import "testing"

func TestLambda(t *testing.T) {
	tests := TestSuite{
		{"function basics", TestSequence{
			{`\ {x} {+ x 1}`, `(\ {x} {+ x 1})`},
			{`(\ {x} {+ x 1}) 1`, "2"},
			{`(\ {x y} {+ x y}) 1 2`, "3"},
			{`def {add} (\ {x y} {+ x y})`, "()"},
			{"add 1 2", "3"},
			{"add", `(\ {x y} {+ x y})`},
			{"== add add", "true"},
		}},
		{"partial application", TestSequence{
			{`def {add} (\ {x y} {+ x y})`, "()"},
			{"add 1", `(\ {y} {+ x y})`},
			{"(add 1) 2", "3"},
			{"def {inc} (add 1)", "()"},
			{"inc 5", "6"},
			{"inc 10", "11"},
			{"add", `(\ {x y} {+ x y})`},
			{"== inc (add 1)", "true"},
			{"== inc (add 2)", "false"},
		}},
		{"arity", TestSequence{
			{`def {add} (\ {x y} {+ x y})`, "()"},
			{"add 1 2 3", "ERROR bad arity"},
		}},
		{"variadic", TestSequence{
			{`def {pack} (\ {x & xs} {xs})`, "()"},
			{"pack 1 2 3", "{2 3}"},
			{"pack 1", "{}"},
			{`def {all} (\ {& xs} {xs})`, "()"},
			{"all 1 2", "{1 2}"},
			{`def {first} (\ {x & xs} {x})`, "()"},
			{"first 1 2 3", "1"},
		}},
		{"formals", TestSequence{
			{`\ {x 1} {x}`, "ERROR bad type"},
			{`\ {& x y} {x}`, "ERROR bad function"},
			{`\ {x &} {x}`, "ERROR bad function"},
			{`\ {x} 1`, "ERROR bad type"},
			{`\ {x}`, "ERROR bad arity"},
		}},
		{"fun", TestSequence{
			{`def {fun} (\ {f b} {def (head f) (\ (tail f) b)})`, "()"},
			{"fun {double x} {* 2 x}", "()"},
			{"double 4", "8"},
			{"fun {fact n} {if (== n 0) {1} {* n (fact (- n 1))}}", "()"},
			{"fact 5", "120"},
			{"fact 0", "1"},
			{"fun {len2 l} {if (== l {}) {0} {+ 1 (len2 (tail l))}}", "()"},
			{"len2 {a b c}", "3"},
		}},
		{"curry", TestSequence{
			{`def {fun} (\ {f b} {def (head f) (\ (tail f) b)})`, "()"},
			{"fun {unpack f l} {eval (join (list f) l)}", "()"},
			{"fun {pack f & xs} {f xs}", "()"},
			{"def {curry} unpack", "()"},
			{"def {uncurry} pack", "()"},
			{"curry + {5 6 7}", "18"},
			{"uncurry head 5 6 7", "{5}"},
		}},
		{"caller scope", TestSequence{
			{`def {show} (\ {x} {y})`, "()"},
			{"show 1", "ERROR unbound symbol"},
			{"def {y} 2", "()"},
			{"show 1", "2"},
		}},
		{"no capture at creation", TestSequence{
			{`def {mk} (\ {x} {\ {y} {+ x y}})`, "()"},
			{"mk 1", `(\ {y} {+ x y})`},
			{"(mk 1) 2", "ERROR unbound symbol"},
			{"def {x} 10", "()"},
			{"(mk 1) 2", "12"},
		}},
	}
	RunTestSuite(t, tests)
}
