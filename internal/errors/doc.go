// Package errors provides the coded error type used across rpg-companion.
//
// The rules engine itself is total and never returns these errors; they are
// produced by the layers around it: repositories report NotFound for missing
// actors or notes, orchestrators report InvalidArgument for bad requests, and
// the gRPC handlers convert everything with ToGRPCError.
//
// # Basic Usage
//
//	err := errors.NotFound("actor not found").WithMeta("actor_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load actor")
//	}
//
//	if errors.IsNotFound(err) {
//	    // fall back to an empty DM notes record
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("actor_id", input.ActorID, vb)
//	errors.ValidateRange("die_type", input.DieType, 2, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
