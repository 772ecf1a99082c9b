package ports

// OutputWriter writes generated files.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type OutputWriter interface {
	// Write replaces the file name inside dir with data, creating dir if needed.
	// It returns the path of the written file.
	Write(dir, name string, data []byte) (string, error)
}
