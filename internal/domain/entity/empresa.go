package entity

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	nitPattern      = regexp.MustCompile(`^[0-9-]+$`)
	telefonoPattern = regexp.MustCompile(`^\+?[0-9]+$`)
)

// TelefonoMinDigitos mínimo de dígitos de un teléfono (sin contar el prefijo +).
const TelefonoMinDigitos = 7

// Longitudes máximas en caracteres; coinciden con las columnas de la tabla empresas.
const (
	NITMaxLen       = 20
	NombreMaxLen    = 255
	DireccionMaxLen = 255
	TelefonoMaxLen  = 20
)

// Empresa es el tenant del sistema, identificada por su NIT colombiano.
// Solo se construye con NewEmpresa; una instancia existente se asume válida y no se muta:
// actualizar es construir una nueva y reemplazar la almacenada.
type Empresa struct {
	NIT       string
	Nombre    string
	Direccion string
	Telefono  string
}

// NewEmpresa valida los invariantes y construye la empresa con los campos recortados.
func NewEmpresa(nit, nombre, direccion, telefono string) (*Empresa, error) {
	nit = strings.TrimSpace(nit)
	nombre = strings.TrimSpace(nombre)
	direccion = strings.TrimSpace(direccion)
	telefono = strings.TrimSpace(telefono)

	if nit == "" {
		return nil, invalid("nit", "el NIT es obligatorio para una empresa")
	}
	if !nitPattern.MatchString(nit) {
		return nil, invalid("nit", "el NIT solo puede contener números y guiones")
	}
	if err := maxLen("nit", nit, NITMaxLen); err != nil {
		return nil, err
	}
	if nombre == "" {
		return nil, invalid("nombre", "el nombre de la empresa es obligatorio")
	}
	if err := maxLen("nombre", nombre, NombreMaxLen); err != nil {
		return nil, err
	}
	if direccion == "" {
		return nil, invalid("direccion", "la dirección de la empresa es obligatoria")
	}
	if err := maxLen("direccion", direccion, DireccionMaxLen); err != nil {
		return nil, err
	}
	if telefono == "" {
		return nil, invalid("telefono", "el teléfono de la empresa es obligatorio")
	}
	if err := maxLen("telefono", telefono, TelefonoMaxLen); err != nil {
		return nil, err
	}
	if !telefonoPattern.MatchString(telefono) {
		return nil, invalid("telefono", "el teléfono solo puede contener dígitos y un + inicial")
	}
	if len(strings.TrimPrefix(telefono, "+")) < TelefonoMinDigitos {
		return nil, invalid("telefono", "el teléfono debe tener al menos 7 dígitos")
	}

	return &Empresa{
		NIT:       nit,
		Nombre:    nombre,
		Direccion: direccion,
		Telefono:  telefono,
	}, nil
}

// maxLen cuenta caracteres, no bytes, igual que VARCHAR(n).
func maxLen(field, value string, limit int) *ValueError {
	if utf8.RuneCountInString(value) > limit {
		return invalid(field, fmt.Sprintf("%s no puede superar %d caracteres", field, limit))
	}
	return nil
}
