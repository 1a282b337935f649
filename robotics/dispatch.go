package robotics

import "go.uber.org/multierr"

// Dispatch executes each robot's task in order. A failing robot does not
// stop the others; every failure is returned combined.
func Dispatch(robots ...Robot) error {
	var err error
	for _, r := range robots {
		err = multierr.Append(err, r.ExecuteTask())
	}
	return err
}
