package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"backend/models"

	"github.com/gin-gonic/gin"
)

// CreateClientHandler creates a client record
// @Summary Create client
// @Description Add a customer that estimates can be scoped to
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body models.Client true "Client details"
// @Success 201 {object} models.Client
// @Failure 400 {object} models.ErrorResponse
// @Router /api/clients [post]
func CreateClientHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var client models.Client
		if err := c.ShouldBindJSON(&client); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		query := `
			INSERT INTO clients (name, email, phone, address, city, state, zip_code, notes, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			RETURNING id, created_at, updated_at`

		err := db.QueryRow(query,
			client.Name, client.Email, client.Phone, client.Address,
			client.City, client.State, client.ZipCode, client.Notes, userID,
		).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client", "details": err.Error()})
			return
		}

		client.CreatedBy = userID
		c.JSON(http.StatusCreated, client)
	}
}

// GetClientsHandler lists clients
// @Summary List clients
// @Description List the authenticated user's clients
// @Tags Clients
// @Produce json
// @Success 200 {array} models.Client
// @Failure 500 {object} models.ErrorResponse
// @Router /api/clients [get]
func GetClientsHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		rows, err := db.Query(`
			SELECT id, name, email, phone, address, city, state, zip_code, notes, created_at, updated_at
			FROM clients
			WHERE created_by = $1
			ORDER BY name ASC`, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients", "details": err.Error()})
			return
		}
		defer rows.Close()

		clients := []models.Client{}
		for rows.Next() {
			var client models.Client
			if err := rows.Scan(
				&client.ID, &client.Name, &client.Email, &client.Phone,
				&client.Address, &client.City, &client.State, &client.ZipCode,
				&client.Notes, &client.CreatedAt, &client.UpdatedAt,
			); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan client", "details": err.Error()})
				return
			}
			clients = append(clients, client)
		}

		c.JSON(http.StatusOK, clients)
	}
}

// GetClientHandler loads one client
// @Summary Get client
// @Description Load a single client owned by the authenticated user
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} models.ErrorResponse
// @Router /api/clients/{id} [get]
func GetClientHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		clientID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
			return
		}

		var client models.Client
		err = db.QueryRow(`
			SELECT id, name, email, phone, address, city, state, zip_code, notes, created_at, updated_at
			FROM clients
			WHERE id = $1 AND created_by = $2`, clientID, userID,
		).Scan(
			&client.ID, &client.Name, &client.Email, &client.Phone,
			&client.Address, &client.City, &client.State, &client.ZipCode,
			&client.Notes, &client.CreatedAt, &client.UpdatedAt,
		)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch client", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, client)
	}
}

// UpdateClientHandler updates a client record
// @Summary Update client
// @Description Update a client owned by the authenticated user
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.Client true "Updated client details"
// @Success 200 {object} models.Client
// @Failure 404 {object} models.ErrorResponse
// @Router /api/clients/{id} [put]
func UpdateClientHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		clientID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
			return
		}

		var client models.Client
		if err := c.ShouldBindJSON(&client); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
			return
		}

		result, err := db.Exec(`
			UPDATE clients
			SET name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6, zip_code = $7, notes = $8, updated_at = NOW()
			WHERE id = $9 AND created_by = $10`,
			client.Name, client.Email, client.Phone, client.Address,
			client.City, client.State, client.ZipCode, client.Notes, clientID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client", "details": err.Error()})
			return
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}

		client.ID = clientID
		c.JSON(http.StatusOK, client)
	}
}

// DeleteClientHandler deletes a client record
// @Summary Delete client
// @Description Delete a client; their estimates are kept but unlinked
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/clients/{id} [delete]
func DeleteClientHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		clientID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
			return
		}

		// Keep historical estimates but detach them from the client.
		if _, err := db.Exec(`UPDATE saved_estimates SET client_id = NULL WHERE client_id = $1 AND created_by = $2`, clientID, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlink estimates", "details": err.Error()})
			return
		}

		result, err := db.Exec(`DELETE FROM clients WHERE id = $1 AND created_by = $2`, clientID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client", "details": err.Error()})
			return
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
	}
}
