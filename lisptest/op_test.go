package lisptest

import "testing"

func TestArithmetic(t *testing.T) {
	tests := TestSuite{
		{"add and multiply", TestSequence{
			{"+ 1 2 3", "6"},
			{"+ 2", "2"},
			{"* 2 3 4", "24"},
			{"* 2", "2"},
			{"+ -1 1", "0"},
		}},
		{"subtract", TestSequence{
			{"- 5", "-5"},
			{"- -5", "5"},
			{"- 10 1 2", "7"},
			{"- 1 2", "-1"},
		}},
		{"divide", TestSequence{
			{"/ 10 3", "3"},
			{"/ -7 2", "-3"},
			{"% 10 3", "1"},
			{"% -5 3", "-2"},
			{"/ 1 0", "ERROR division by zero"},
			{"% 1 0", "ERROR division by zero"},
			{"/ 1 2 3", "ERROR bad arity"},
			{"/ 1", "ERROR bad arity"},
		}},
		{"min and max", TestSequence{
			{"min 3 1 2", "1"},
			{"max 3 1 2", "3"},
			{"min 4", "4"},
			{"max -1 -2", "-1"},
			{"min 1 {2}", "ERROR bad type"},
		}},
		{"type errors", TestSequence{
			{"+ 1 {2}", "ERROR bad type"},
			{`* 2 "3"`, "ERROR bad type"},
			{"- true", "ERROR bad type"},
		}},
		{"wrap around", TestSequence{
			{"+ 9223372036854775807 1", "-9223372036854775808"},
			{"- -9223372036854775808 1", "9223372036854775807"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestCompare(t *testing.T) {
	tests := TestSuite{
		{"ordering", TestSequence{
			{"< 1 2", "true"},
			{"< 2 1", "false"},
			{"< 1 1", "false"},
			{"<= 1 1", "true"},
			{"> 2 1", "true"},
			{">= 1 2", "false"},
			{"< 1 2 3", "true"},
			{"< 1 3 2", "false"},
			{">= 3 3 1", "true"},
			{"< 1", "ERROR bad arity"},
			{"< 1 {2}", "ERROR bad type"},
		}},
		{"equality", TestSequence{
			{"== 1 1", "true"},
			{"== 1 2", "false"},
			{"== 1 1 1", "true"},
			{"== {1 2} {1 2}", "true"},
			{"== {1 2} {1 2 3}", "false"},
			{"== 1 {1}", "false"},
			{`== "a" "a"`, "true"},
			{`== "a" a`, "ERROR unbound symbol"},
			{"== true true", "true"},
			{"== + +", "true"},
			{"== + -", "false"},
			{"!= 1 2", "true"},
			{"!= 1 1", "false"},
			{"!= 1 2 1", "false"},
			{"== 1", "ERROR bad arity"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestLogic(t *testing.T) {
	tests := TestSuite{
		{"not", TestSequence{
			{"! true", "false"},
			{"! false", "true"},
			{"! 1", "ERROR bad type"},
			{"! true false", "ERROR bad arity"},
		}},
		{"and", TestSequence{
			{"&& true true", "true"},
			{"&& true false", "false"},
			{"&& true true true", "true"},
			{"&& false 5", "false"},
			{"&& true 5", "ERROR bad type"},
			{"&& false (/ 1 0)", "ERROR division by zero"},
		}},
		{"or", TestSequence{
			{"|| false true", "true"},
			{"|| false false", "false"},
			{"|| true 5", "true"},
			{"|| false 5", "ERROR bad type"},
		}},
		{"if", TestSequence{
			{"if true {1} {2}", "1"},
			{"if false {1} {2}", "2"},
			{"if (> 1 2) {+ 1 1} {+ 2 2}", "4"},
			{"if (== 1 1) {} {2}", "()"},
			{"if true {{1 2}} {2}", "{1 2}"},
			{"if 1 {1} {2}", "ERROR bad type"},
			{"if true {1}", "ERROR bad arity"},
			{"if true 1 {2}", "ERROR bad type"},
			{"if true {1} {/ 1 0}", "1"},
		}},
	}
	RunTestSuite(t, tests)
}
