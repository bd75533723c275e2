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

package cat

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/tangentforks/catlang/list"
	"github.com/tangentforks/catlang/record"
	"github.com/tangentforks/catlang/types"
)

// TypeOf returns the static type of a runtime value. Functions have their stack effect as their
// type; untyped functions and nil have no type.
func TypeOf(v any) types.Type {
	switch v := v.(type) {
	case nil:
		return nil
	case int:
		return types.Int
	case bool:
		return types.Bool
	case string:
		return types.String
	case float64:
		return types.Float
	case list.List:
		return types.List
	case *record.Object:
		return v.Class()
	case Function:
		if ft := fxnOf(v); ft != nil {
			return ft
		}
		return nil
	}
	return &types.Const{Name: reflect.TypeOf(v).String()}
}

// Format prints a runtime value the way it is written in source code.
func Format(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case nil:
		return "nil"
	}
	return fmt.Sprint(v)
}

// Equal compares runtime values structurally. Lists are compared element-wise.
func Equal(a, b any) (bool, error) { return list.EqualValues(a, b) }
