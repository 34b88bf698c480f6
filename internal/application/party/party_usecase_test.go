package party_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorsur/bodega-api/internal/application/dto"
	"github.com/gestorsur/bodega-api/internal/application/party"
	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/internal/infrastructure/memory"
)

func TestCustomerCreate_NormalizaRut(t *testing.T) {
	uc := party.NewCustomerUseCase(memory.NewCustomerRepository(memory.NewStore()))

	// El RUT llega con puntos y se guarda normalizado NNNNNNNN-D
	resp, err := uc.Create(context.Background(), dto.CreatePartyRequest{
		Name: "Constructora Andes", Rut: "12.345.678-5",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", resp.Rut)
}

func TestCustomerCreate_RutInvalido(t *testing.T) {
	uc := party.NewCustomerUseCase(memory.NewCustomerRepository(memory.NewStore()))
	_, err := uc.Create(context.Background(), dto.CreatePartyRequest{
		Name: "Cliente", Rut: "12345678-9",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRut)
}

func TestCustomerCreate_RutDuplicadoEntreFormatos(t *testing.T) {
	// Un mismo RUT en dos formatos distintos colisiona tras la normalización.
	uc := party.NewCustomerUseCase(memory.NewCustomerRepository(memory.NewStore()))
	_, err := uc.Create(context.Background(), dto.CreatePartyRequest{Name: "Uno", Rut: "12345678-5"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreatePartyRequest{Name: "Dos", Rut: "12.345.678-5"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerCreate_SinNombre(t *testing.T) {
	uc := party.NewCustomerUseCase(memory.NewCustomerRepository(memory.NewStore()))
	_, err := uc.Create(context.Background(), dto.CreatePartyRequest{Rut: "12345678-5"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierCreate_DigitoVerificadorK(t *testing.T) {
	uc := party.NewSupplierUseCase(memory.NewSupplierRepository(memory.NewStore()))
	resp, err := uc.Create(context.Background(), dto.CreatePartyRequest{
		Name: "Proveedora K", Rut: "20.347.878-k",
	})
	require.NoError(t, err)
	assert.Equal(t, "20347878-K", resp.Rut, "la K se normaliza a mayúscula")
}

func TestSupplierList_Paginado(t *testing.T) {
	uc := party.NewSupplierUseCase(memory.NewSupplierRepository(memory.NewStore()))
	_, err := uc.Create(context.Background(), dto.CreatePartyRequest{Name: "Alfa", Rut: "12345678-5"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreatePartyRequest{Name: "Beta", Rut: "87654321-4"})
	require.NoError(t, err)

	page, err := uc.List(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Alfa", page[0].Name, "listado ordenado por nombre")

	page, err = uc.List(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Beta", page[0].Name)
}
