package stringx_test

import (
	"fmt"

	mdwstringx "github.com/msto63/bstr/foundation/utils/stringx"
)

func ExampleString_Split() {
	parts, err := mdwstringx.New("a,,b").Split(mdwstringx.New(","))
	if err != nil {
		panic(err)
	}
	for _, p := range parts {
		fmt.Printf("%q\n", p.String())
	}
	// Output:
	// "a"
	// ""
	// "b"
}

func ExampleString_SliceStep() {
	s := mdwstringx.New("hello")
	r, _ := s.SliceStep(mdwstringx.Open, mdwstringx.Open, -1)
	fmt.Println(r)
	fmt.Println(s.Slice(-3, mdwstringx.Open))
	// Output:
	// olleh
	// llo
}

func ExampleString_Replace() {
	fmt.Println(mdwstringx.New("ab").Replace(mdwstringx.String{}, mdwstringx.New("X")))
	fmt.Println(mdwstringx.New("a-b-c").Replace(mdwstringx.New("-"), mdwstringx.New("+")))
	// Output:
	// XaXb
	// a+b+c
}

func ExampleBuilder() {
	var b mdwstringx.Builder
	b.WriteString("answer=")
	b.WriteInt(42)
	fmt.Println(b.Build())
	// Output: answer=42
}

func ExampleConcat() {
	fmt.Println(mdwstringx.Concat("pi ~ ", 3.14, ", ok=", true))
	// Output: pi ~ 3.14, ok=true
}
