package metrics

// LogoCatalog asocia el nombre de un cliente o banco con la ruta de su logo.
// El fallback es explícito: Resolve informa si la ruta viene del catálogo.
type LogoCatalog struct {
	paths    map[string]string
	Fallback string
}

// NewLogoCatalog copia el mapeo para que el catálogo sea inmutable.
func NewLogoCatalog(paths map[string]string, fallback string) LogoCatalog {
	cp := make(map[string]string, len(paths))
	for k, v := range paths {
		cp[k] = v
	}
	return LogoCatalog{paths: cp, Fallback: fallback}
}

// Resolve devuelve la ruta registrada y true, o "" y false si no existe.
func (c LogoCatalog) Resolve(name string) (string, bool) {
	p, ok := c.paths[name]
	return p, ok
}

// PathOrFallback devuelve la ruta registrada o el Fallback.
func (c LogoCatalog) PathOrFallback(name string) string {
	if p, ok := c.paths[name]; ok {
		return p
	}
	return c.Fallback
}
