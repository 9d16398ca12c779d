// Package units provides a string-parsed unit registry with dimensional
// analysis and scale-factor conversion.
//
// A Registry resolves unit expressions like "meter", "kilogram * meter /
// second ** 2" or "1 / meter" to Unit values. Units carry exact rational
// exponents, so sqrt(meter ** 2) cancels back to meter. Two units are
// convertible when their Dimension vectors are equal; the conversion is a
// pure scale factor (offset units such as celsius are not modeled).
//
// # Usage
//
//	reg := units.DefaultRegistry()
//	m, _ := reg.Parse("meter")
//	cm, _ := reg.Parse("cm")
//	f, _ := units.ConversionFactor(m, cm) // 100
//
// # Custom units
//
// Registries are extensible at runtime:
//
//	reg := units.NewRegistry()
//	reg.DefineBase("meter", "length", "m")
//	reg.Define("furlong", "201.168 meter")
//
// Definition TOML files can be loaded with LoadDefinitionsFile and kept hot
// with Watch, which reloads the file whenever it changes on disk.
package units
