// Command sumgen writes the marker methods that close the sum types of a
// package, from declarations like
//
//	sum Operand = OperandCopy | OperandMove ;
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type SumDecls struct {
	Declarations []*Declaration `@@*`
}

type Declaration struct {
	Name     string   `"sum" @Ident "="`
	Variants []string `@Ident ("|" @Ident)*`
	I        struct{} `";"`
}

func GenerateMarkers(pkgname, source string, s *SumDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by sumgen from %s. DO NOT EDIT.", source))

	for _, decl := range s.Declarations {
		for _, variant := range decl.Variants {
			f.Func().Params(Op("*").Id(variant)).Id("is" + decl.Name).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: sumgen <in.sum> <out.go> <package>")
		os.Exit(2)
	}
	parser := participle.MustBuild(&SumDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls := SumDecls{}
	err = parser.ParseBytes(inData, &decls)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateMarkers(pkgname, filepath.Base(in), &decls)), 0644)
	if err != nil {
		panic(err)
	}
}
