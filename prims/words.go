// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package prims

import (
	cat "github.com/tangentforks/catlang"
	"github.com/tangentforks/catlang/list"
	"github.com/tangentforks/catlang/record"
	"github.com/tangentforks/catlang/stack"
	"github.com/tangentforks/catlang/types"
)

func primitives(rt *cat.Runtime) []*cat.Primitive {
	return []*cat.Primitive{
		// Stack manipulation

		cat.MustPrimitive("id", "('A -> 'A)", "does nothing", func(s *stack.Stack) error {
			return nil
		}),
		cat.MustPrimitive("pop", "('a -> )", "removes the top value", func(s *stack.Stack) error {
			_, err := s.Pop()
			return err
		}),
		cat.MustPrimitive("dup", "('a -> 'a 'a)", "duplicates the top value", func(s *stack.Stack) error {
			v, err := s.Peek()
			if err != nil {
				return err
			}
			s.Push(v)
			return nil
		}),
		cat.MustPrimitive("swap", "('a 'b -> 'b 'a)", "swaps the top two values", func(s *stack.Stack) error {
			b, err := s.Pop()
			if err != nil {
				return err
			}
			a, err := s.Pop()
			if err != nil {
				return err
			}
			s.Push(b)
			s.Push(a)
			return nil
		}),

		// Functions

		cat.MustPrimitive("dip", "('A 'b ('A -> 'C) -> 'C 'b)",
			"evaluates a function below the top value",
			func(s *stack.Stack) error {
				f, err := stack.Pop[cat.Function](s)
				if err != nil {
					return err
				}
				b, err := s.Pop()
				if err != nil {
					return err
				}
				if err := f.Eval(s); err != nil {
					return err
				}
				s.Push(b)
				return nil
			}),
		cat.MustPrimitive("apply", "('A ('A -> 'B) -> 'B)", "evaluates a function", func(s *stack.Stack) error {
			f, err := stack.Pop[cat.Function](s)
			if err != nil {
				return err
			}
			return f.Eval(s)
		}),
		cat.MustPrimitive("compose", "('A ('B -> 'C) ('C -> 'D) -> 'A ('B -> 'D))",
			"creates a function which evaluates two functions in order",
			func(s *stack.Stack) error {
				second, err := stack.Pop[cat.Closure](s)
				if err != nil {
					return err
				}
				first, err := stack.Pop[cat.Closure](s)
				if err != nil {
					return err
				}
				s.Push(rt.Compose(first, second))
				return nil
			}),
		cat.MustPrimitive("quote", "('A 'b -> 'A ('C -> 'C 'b))",
			"creates a function which pushes a value",
			func(s *stack.Stack) error {
				v, err := s.Pop()
				if err != nil {
					return err
				}
				s.Push(cat.NewQuotedValue(v))
				return nil
			}),
		cat.MustPrimitive("if", "('A bool ('A -> 'B) ('A -> 'B) -> 'B)",
			"evaluates the first function when the condition holds, otherwise the second",
			func(s *stack.Stack) error {
				onFalse, err := stack.Pop[cat.Function](s)
				if err != nil {
					return err
				}
				onTrue, err := stack.Pop[cat.Function](s)
				if err != nil {
					return err
				}
				cond, err := stack.Pop[bool](s)
				if err != nil {
					return err
				}
				if cond {
					return onTrue.Eval(s)
				}
				return onFalse.Eval(s)
			}),

		// Arithmetic and logic

		binary("+", "(int int -> int)", "adds two integers", func(a, b int) any { return a + b }),
		binary("-", "(int int -> int)", "subtracts the top integer from the one below", func(a, b int) any { return a - b }),
		binary("*", "(int int -> int)", "multiplies two integers", func(a, b int) any { return a * b }),
		binary("<", "(int int -> bool)", "compares two integers", func(a, b int) any { return a < b }),
		binary(">", "(int int -> bool)", "compares two integers", func(a, b int) any { return a > b }),
		cat.MustPrimitive("eq", "('a 'a -> bool)", "compares two values", func(s *stack.Stack) error {
			b, err := s.Pop()
			if err != nil {
				return err
			}
			a, err := s.Pop()
			if err != nil {
				return err
			}
			ok, err := cat.Equal(a, b)
			if err != nil {
				return err
			}
			s.Push(ok)
			return nil
		}),
		cat.MustPrimitive("not", "(bool -> bool)", "negates a boolean", func(s *stack.Stack) error {
			b, err := stack.Pop[bool](s)
			if err != nil {
				return err
			}
			s.Push(!b)
			return nil
		}),

		// Lists

		cat.MustPrimitive("nil", "( -> list)", "pushes the empty list", func(s *stack.Stack) error {
			s.Push(list.Nil)
			return nil
		}),
		cat.MustPrimitive("cons", "(list 'a -> list)", "adds a value to the head of a list", func(s *stack.Stack) error {
			x, err := s.Pop()
			if err != nil {
				return err
			}
			l, err := stack.Pop[list.List](s)
			if err != nil {
				return err
			}
			s.Push(list.Cons(l, x))
			return nil
		}),
		cat.MustPrimitive("count", "(list -> int)", "counts the elements of a list", func(s *stack.Stack) error {
			l, err := stack.Pop[list.List](s)
			if err != nil {
				return err
			}
			n, err := l.Count()
			if err != nil {
				return err
			}
			s.Push(n)
			return nil
		}),
		cat.MustPrimitive("nth", "(list int -> 'a)", "pushes an element of a list, where 0 is the bottom",
			func(s *stack.Stack) error {
				i, err := stack.Pop[int](s)
				if err != nil {
					return err
				}
				l, err := stack.Pop[list.List](s)
				if err != nil {
					return err
				}
				x, err := l.Nth(i)
				if err != nil {
					return err
				}
				s.Push(x)
				return nil
			}),
		cat.MustPrimitive("drop", "(list int -> list)", "removes elements from the head of a list",
			func(s *stack.Stack) error {
				n, err := stack.Pop[int](s)
				if err != nil {
					return err
				}
				l, err := stack.Pop[list.List](s)
				if err != nil {
					return err
				}
				rest, err := l.Drop(n)
				if err != nil {
					return err
				}
				s.Push(rest)
				return nil
			}),
		cat.MustPrimitive("head", "(list -> 'a)", "pushes the head of a list", func(s *stack.Stack) error {
			l, err := stack.Pop[list.List](s)
			if err != nil {
				return err
			}
			x, err := l.Head()
			if err != nil {
				return err
			}
			s.Push(x)
			return nil
		}),
		cat.MustPrimitive("tail", "(list -> list)", "removes the head of a list", func(s *stack.Stack) error {
			l, err := stack.Pop[list.List](s)
			if err != nil {
				return err
			}
			rest, err := l.Tail()
			if err != nil {
				return err
			}
			s.Push(rest)
			return nil
		}),
		cat.MustPrimitive("map", "(list ('B 'a -> 'B 'b) -> list)", "transforms every element of a list",
			func(s *stack.Stack) error {
				f, l, err := popFunctionAndList(s)
				if err != nil {
					return err
				}
				out, err := l.Map(cat.MapFunc(f))
				if err != nil {
					return err
				}
				s.Push(out)
				return nil
			}),
		cat.MustPrimitive("filter", "(list ('B 'a -> 'B bool) -> list)", "keeps the elements of a list which satisfy a predicate",
			func(s *stack.Stack) error {
				f, l, err := popFunctionAndList(s)
				if err != nil {
					return err
				}
				out, err := l.Filter(cat.FilterFunc(f))
				if err != nil {
					return err
				}
				s.Push(out)
				return nil
			}),
		cat.MustPrimitive("foldl", "(list 'a ('B 'a 'b -> 'B 'a) -> 'a)", "combines the elements of a list from the bottom",
			func(s *stack.Stack) error {
				f, err := stack.Pop[cat.Function](s)
				if err != nil {
					return err
				}
				init, err := s.Pop()
				if err != nil {
					return err
				}
				l, err := stack.Pop[list.List](s)
				if err != nil {
					return err
				}
				acc, err := l.Foldl(init, cat.FoldFunc(f))
				if err != nil {
					return err
				}
				s.Push(acc)
				return nil
			}),
		cat.MustPrimitive("gen", "('a ('B 'a -> 'B bool) ('C 'a -> 'C 'a) -> list)",
			"generates a lazy list from an initial value while a condition holds",
			func(s *stack.Stack) error {
				next, err := stack.Pop[cat.Function](s)
				if err != nil {
					return err
				}
				cond, err := stack.Pop[cat.Function](s)
				if err != nil {
					return err
				}
				init, err := s.Pop()
				if err != nil {
					return err
				}
				s.Push(list.Lazy(init, cat.FilterFunc(cond), cat.MapFunc(next)))
				return nil
			}),
		cat.MustPrimitive("range", "(int ('B int -> 'B 'a) -> list)", "generates a list from the indices 0 to n-1",
			func(s *stack.Stack) error {
				f, err := stack.Pop[cat.Function](s)
				if err != nil {
					return err
				}
				n, err := stack.Pop[int](s)
				if err != nil {
					return err
				}
				l, err := list.FromGen(n, cat.GenFunc(f))
				if err != nil {
					return err
				}
				s.Push(l)
				return nil
			}),

		// Objects

		cat.MustPrimitive("object", "( -> object)", "pushes a new object without fields", func(s *stack.Stack) error {
			s.Push(record.New(types.NewClass("")))
			return nil
		}),
	}
}

func binary(name, sig, desc string, op func(a, b int) any) *cat.Primitive {
	return cat.MustPrimitive(name, sig, desc, func(s *stack.Stack) error {
		b, err := stack.Pop[int](s)
		if err != nil {
			return err
		}
		a, err := stack.Pop[int](s)
		if err != nil {
			return err
		}
		s.Push(op(a, b))
		return nil
	})
}

func popFunctionAndList(s *stack.Stack) (cat.Function, list.List, error) {
	f, err := stack.Pop[cat.Function](s)
	if err != nil {
		return nil, nil, err
	}
	l, err := stack.Pop[list.List](s)
	if err != nil {
		return nil, nil, err
	}
	return f, l, nil
}
