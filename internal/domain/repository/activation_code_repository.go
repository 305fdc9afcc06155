package repository

// ActivationCodeRepository define el puerto para los códigos de activación
// de un solo uso.
type ActivationCodeRepository interface {
	// Consume marca el código como usado si y solo si aún no lo estaba.
	// Devuelve false si el código no existe o ya fue utilizado; la
	// actualización es atómica, consumirlo dos veces nunca da true dos veces.
	Consume(code, usedBy string) (bool, error)
	// EnsureDefaults inserta los códigos iniciales si la tabla está vacía.
	EnsureDefaults(codes []string) error
	Count() (int64, error)
}
