// Package entity contiene el modelo de dominio del CRM: clientes,
// usuarios, etiquetas, ventas y la familia de interacciones. Cada entidad
// es experta en su propia información; la coordinación entre entidades
// vive en la capa de aplicación.
package entity

// Entity es el contrato mínimo de todo objeto almacenable: una identidad
// entera única dentro de su colección. La identidad la asigna el store al
// agregar el elemento y no se reutiliza nunca.
type Entity interface {
	EntityID() int
	AssignID(id int)
}

// Searchable lo implementan las entidades que soportan búsqueda por
// subcadena. Matches es insensible a mayúsculas y a acentos.
type Searchable interface {
	Matches(term string) bool
}
