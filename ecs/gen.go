package ecs

//go:generate go run ../internal/itergen -pkg ecs -min 2 -max 10 -out non_packed_generated.go
