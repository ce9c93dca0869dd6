// Package gen receives generated clock trees during tests.
package gen
