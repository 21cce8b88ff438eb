// Package apptest reúne dobles en memoria de los repositorios y puertos,
// compartidos por los tests de los casos de uso y de la capa HTTP.
package apptest
