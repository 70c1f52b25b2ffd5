// File: controllers/product.controller.go
package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AddProduct creates a product from a multipart form with optional image1..image4 files.
func (ctrl *Controller) AddProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout())
	defer cancel()

	fields, form, err := readFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	uploads, cleanup, err := stageUploads(c, form)
	defer cleanup()
	if err != nil {
		writeFailure(c, "AddProduct", err, true)
		return
	}

	product, err := ctrl.Products.Create(ctx, fields, uploads)
	if err != nil {
		writeFailure(c, "AddProduct", err, true)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct patches the supplied fields of a product. Responds with null
// when the id matches nothing.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout())
	defer cancel()

	fields, form, err := readFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	uploads, cleanup, err := stageUploads(c, form)
	defer cleanup()
	if err != nil {
		writeFailure(c, "UpdateProduct", err, true)
		return
	}

	product, err := ctrl.Products.Update(ctx, c.Param("id"), fields, uploads)
	if err != nil {
		writeFailure(c, "UpdateProduct", err, true)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListProducts returns every product.
func (ctrl *Controller) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout())
	defer cancel()

	products, err := ctrl.Products.List(ctx)
	if err != nil {
		writeFailure(c, "ListProduct", err, false)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product, or null.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout())
	defer cancel()

	product, err := ctrl.Products.Get(ctx, c.Param("id"))
	if err != nil {
		writeFailure(c, "GetProduct", err, false)
		return
	}
	c.JSON(http.StatusOK, product)
}

// RemoveProduct deletes a product and returns it, or null.
func (ctrl *Controller) RemoveProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout())
	defer cancel()

	product, err := ctrl.Products.Remove(ctx, c.Param("id"))
	if err != nil {
		writeFailure(c, "RemoveProduct", err, false)
		return
	}
	c.JSON(http.StatusOK, product)
}

// writeFailure logs err under component and answers 500. Write handlers
// expose the error text; read and delete handlers do not.
func writeFailure(c *gin.Context, component string, err error, exposeErr bool) {
	message := component + " error"
	log.Ctx(c.Request.Context()).Error().Err(err).Str("component", component).Msg(message)

	body := gin.H{"message": message}
	if exposeErr {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
