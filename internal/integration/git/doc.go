// Package git runs the small set of git commands the editor needs to publish
// the file it is editing: stage, commit, and optionally push.
//
// Commands run through a Runner so callers and tests can substitute the
// process layer. Every invocation is tagged with a fresh id that is reported
// to the configured observer and carried on any CommandError, which lets a
// log line be matched to the status message it produced.
//
//	repo, err := git.Discover(filepath.Dir(filename))
//	if err != nil {
//	    return err
//	}
//	if err := repo.Add(ctx, filename); err != nil {
//	    return err
//	}
//	if _, err := repo.Commit(ctx, "fix typo"); err != nil {
//	    return err
//	}
package git
