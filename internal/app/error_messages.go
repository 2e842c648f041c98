// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// users API handlers and its client.
//
// All Msg* constants are the human-readable strings written into the "data"
// field of the response envelope. Clients match on them, so the wording is
// part of the API.
package app

const (
	// MsgListFailed is returned when the repository cannot list users.
	MsgListFailed = "Falha ao listar os usuários"

	// MsgUserNotFound is returned when no user has the requested id,
	// including ids that are not integers.
	MsgUserNotFound = "Usuário não encontrado"

	// MsgFindFailed is returned when the repository fails while looking up
	// a single user.
	MsgFindFailed = "Falha ao buscar o usuário"

	// MsgUserCreated confirms a successful create.
	MsgUserCreated = "Usuário criado com sucesso"

	// MsgCreateFailed is returned for every create failure: malformed
	// body, invalid fields, duplicate id or a storage error.
	MsgCreateFailed = "Falha ao criar o usuário"

	// MsgUserDeleted confirms a successful delete.
	MsgUserDeleted = "Usuário excluído com sucesso"

	// MsgDeleteFailed is returned when nothing was deleted or the
	// repository failed.
	MsgDeleteFailed = "Falha ao remover o usuário"
)
