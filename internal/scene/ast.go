package scene

import "github.com/alecthomas/participle/v2/lexer"

// File is the root of a parsed scene.
type File struct {
	Objects []*ObjectDecl `@@*`
}

// ObjectDecl declares a named object and its elements.
type ObjectDecl struct {
	Pos lexer.Position

	Name     string         `"object" @Ident "{"`
	Elements []*ElementDecl `@@* "}"`
}

// ElementDecl is one element statement.
type ElementDecl struct {
	Pos lexer.Position

	Polygon  *PolygonDecl  `  @@`
	Arc      *ArcDecl      `| @@`
	Spline   *SplineDecl   `| @@`
	Path     *PathDecl     `| @@`
	Label    *LabelDecl    `| @@`
	Instance *InstanceDecl `| @@`
}

// Attr is a style flag or a stroke attribute.
type Attr struct {
	Flag  string   `  @("closed" | "unclosed" | "dashed" | "dotted" | "noborder" | "filled" | "square" | "param" | "instparam")`
	Width *float64 `| "width" @(Float | Int)`
	Color string   `| "color" @Color`
}

// PointDecl is an integer coordinate pair: (x, y).
type PointDecl struct {
	X int `"(" @Int`
	Y int `"," @Int ")"`
}

// PolygonDecl: polygon [attrs] (x,y)... ;
type PolygonDecl struct {
	Attrs  []*Attr      `"polygon" @@*`
	Points []*PointDecl `@@+ ";"`
}

// ArcDecl: arc [attrs] (x,y) radius yaxis angle1 angle2 ;
type ArcDecl struct {
	Attrs  []*Attr    `"arc" @@*`
	Center *PointDecl `@@`
	Radius int        `@Int`
	YAxis  int        `@Int`
	Angle1 float64    `@(Float | Int)`
	Angle2 float64    `@(Float | Int) ";"`
}

// SplineDecl: spline [attrs] p0 p1 p2 p3 ;
type SplineDecl struct {
	Attrs []*Attr      `"spline" @@*`
	Ctrl  []*PointDecl `@@ @@ @@ @@ ";"`
}

// PathDecl: path [attrs] { part... }
type PathDecl struct {
	Attrs []*Attr     `"path" @@* "{"`
	Parts []*PartDecl `@@* "}"`
}

// PartDecl is a path part.
type PartDecl struct {
	Pos lexer.Position

	Polygon *PolygonDecl `  @@`
	Spline  *SplineDecl  `| @@`
}

// LabelDecl: label "text" (x,y) width height [opts] ;
type LabelDecl struct {
	Text     string      `"label" @String`
	Position *PointDecl  `@@`
	Width    int         `@Int`
	Height   int         `@Int`
	Opts     []*LabelOpt `@@* ";"`
}

// LabelOpt is an optional label attribute.
type LabelOpt struct {
	Rotation *float64 `  "rot" @(Float | Int)`
	Scale    *float64 `| "scale" @(Float | Int)`
	Pin      string   `| "pin" @("local" | "global" | "info")`
	Color    string   `| "color" @Color`
}

// InstanceDecl: instance name (x,y) [opts] [{ override... }] ;
type InstanceDecl struct {
	Object    string          `"instance" @Ident`
	Position  *PointDecl      `@@`
	Opts      []*InstanceOpt  `@@*`
	Overrides []*OverrideDecl `( "{" @@* "}" )? ";"`
}

// InstanceOpt is an optional placement attribute.
type InstanceOpt struct {
	Rotation *float64 `  "rot" @(Float | Int)`
	Scale    *float64 `| "scale" @(Float | Int)`
}

// OverrideDecl replaces element Index of the instanced object for one
// instance.
type OverrideDecl struct {
	Index   int          `"override" @Int`
	Element *ElementDecl `@@`
}
