package main

import (
	"context"

	sqliteadapter "github.com/sporttracker/sporttracker/internal/adapters/db/sqlite"
	"github.com/sporttracker/sporttracker/internal/application"
	"github.com/sporttracker/sporttracker/internal/domain"
)

// withService opens the store for a single CLI invocation. The socket
// transport goes through a running server instead so the two never hold the
// database file at the same time.
func withService(ctx context.Context, cfg cliConfig, fn func(ctx context.Context, svc *application.TrackerService) error) error {
	session, err := sqliteadapter.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()
	return fn(ctx, application.NewTrackerService(session))
}

func doSportTypesList(ctx context.Context, cfg cliConfig, out *[]application.DatasetSportType) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "sporttypes.list", nil, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		sportTypes, err := svc.SportTypes(ctx)
		if err != nil {
			return err
		}
		*out = application.DatasetFromApplicationData(domain.ApplicationData{SportTypes: sportTypes}).SportTypes
		return nil
	})
}

func doSportTypesDelete(ctx context.Context, cfg cliConfig, id int64) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "sporttypes.delete", map[string]any{"id": id}, nil)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		return svc.DeleteSportType(ctx, id)
	})
}

func doExercisesList(ctx context.Context, cfg cliConfig, sportTypeID int64, out *[]application.DatasetExercise) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "exercises.list", map[string]any{"sport_type_id": sportTypeID}, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		exercises, err := svc.Exercises(ctx, sportTypeID)
		if err != nil {
			return err
		}
		*out = application.DatasetFromApplicationData(domain.ApplicationData{Exercises: exercises}).Exercises
		return nil
	})
}

func doExercisesAdd(ctx context.Context, cfg cliConfig, row application.DatasetExercise, out *application.DatasetExercise) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "exercises.add", row, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		sportTypes, err := svc.SportTypes(ctx)
		if err != nil {
			return err
		}
		exercise, err := row.ToExercise(sportTypes)
		if err != nil {
			return err
		}
		created, err := svc.AddExercise(ctx, exercise)
		if err != nil {
			return err
		}
		*out = application.NewDatasetExercise(created)
		return nil
	})
}

func doExercisesDelete(ctx context.Context, cfg cliConfig, id int64) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "exercises.delete", map[string]any{"id": id}, nil)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		return svc.DeleteExercise(ctx, id)
	})
}

func doNotesList(ctx context.Context, cfg cliConfig, out *[]application.DatasetNote) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "notes.list", nil, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		notes, err := svc.Notes(ctx)
		if err != nil {
			return err
		}
		*out = application.DatasetFromApplicationData(domain.ApplicationData{Notes: notes}).Notes
		return nil
	})
}

func doNotesAdd(ctx context.Context, cfg cliConfig, note *domain.Note, out *application.DatasetNote) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "notes.add", map[string]any{
			"date_time": note.DateTime,
			"comment":   note.Comment,
		}, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		created, err := svc.AddNote(ctx, note)
		if err != nil {
			return err
		}
		*out = application.DatasetNote{ID: created.ID, DateTime: created.DateTime, Comment: created.Comment}
		return nil
	})
}

func doNotesDelete(ctx context.Context, cfg cliConfig, id int64) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "notes.delete", map[string]any{"id": id}, nil)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		return svc.DeleteNote(ctx, id)
	})
}

func doWeightsList(ctx context.Context, cfg cliConfig, out *[]application.DatasetWeight) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "weights.list", nil, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		weights, err := svc.Weights(ctx)
		if err != nil {
			return err
		}
		*out = application.DatasetFromApplicationData(domain.ApplicationData{Weights: weights}).Weights
		return nil
	})
}

func doWeightsAdd(ctx context.Context, cfg cliConfig, weight *domain.Weight, out *application.DatasetWeight) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "weights.add", map[string]any{
			"date_time": weight.DateTime,
			"value":     weight.Value,
			"comment":   weight.Comment,
		}, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		created, err := svc.AddWeight(ctx, weight)
		if err != nil {
			return err
		}
		*out = application.DatasetWeight{ID: created.ID, DateTime: created.DateTime, Value: created.Value, Comment: created.Comment}
		return nil
	})
}

func doWeightsDelete(ctx context.Context, cfg cliConfig, id int64) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "weights.delete", map[string]any{"id": id}, nil)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		return svc.DeleteWeight(ctx, id)
	})
}

func doImport(ctx context.Context, cfg cliConfig, doc application.Dataset) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "data.import", doc, nil)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		data, err := doc.ToApplicationData()
		if err != nil {
			return err
		}
		return svc.ImportApplicationData(ctx, data)
	})
}

func doExport(ctx context.Context, cfg cliConfig, out *application.Dataset) error {
	if cfg.Transport == "socket" {
		return newRPCClient(cfg.Socket).call(ctx, "data.export", nil, out)
	}
	return withService(ctx, cfg, func(ctx context.Context, svc *application.TrackerService) error {
		data, err := svc.LoadAll(ctx)
		if err != nil {
			return err
		}
		*out = application.DatasetFromApplicationData(data)
		return nil
	})
}
