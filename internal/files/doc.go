// Package files groups the image-tree access layers:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: category folder walk and article extraction
package files
